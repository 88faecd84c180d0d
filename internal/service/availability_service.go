package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/repository"
	"github.com/medivane/hospital-core/internal/slot"
)

// DayAvailability is the outcome of one availability query. Available is false
// when the doctor has no template for the date's weekday; that is a normal
// result, not an error. Booked holds the slot starts already taken so the
// caller can partition free vs. booked without a second round trip.
type DayAvailability struct {
	Date      string      `json:"date"`
	Weekday   string      `json:"weekday"`
	Available bool        `json:"available"`
	Slots     []slot.Slot `json:"slots,omitempty"`
	Booked    []string    `json:"booked,omitempty"`
}

// IsBooked reports whether a slot start is in the booked set.
func (d *DayAvailability) IsBooked(start string) bool {
	for _, b := range d.Booked {
		if b == start {
			return true
		}
	}
	return false
}

type AvailabilityService struct {
	templates    repository.ScheduleTemplateRepository
	appointments repository.AppointmentRepository
	interval     time.Duration
}

func NewAvailabilityService(
	templates repository.ScheduleTemplateRepository,
	appointments repository.AppointmentRepository,
	interval time.Duration,
) *AvailabilityService {
	if interval <= 0 {
		interval = slot.DefaultInterval
	}
	return &AvailabilityService{
		templates:    templates,
		appointments: appointments,
		interval:     interval,
	}
}

// Resolve maps the date to its weekday, loads the doctor's template for it,
// generates the candidate slots and annotates them with the booked set for
// (doctor, date, hospital).
func (s *AvailabilityService) Resolve(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	date string,
) (*DayAvailability, error) {
	weekday, err := slot.WeekdayOf(date)
	if err != nil {
		return nil, err
	}

	tpl, err := s.templates.GetForWeekday(ctx, hospitalID, doctorID, weekday)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DayAvailability{Date: date, Weekday: weekday, Available: false}, nil
		}
		return nil, fmt.Errorf("load schedule template: %w", err)
	}

	slots, err := slot.Generate(slot.Window{
		Start:      tpl.StartTime,
		End:        tpl.EndTime,
		BreakStart: tpl.BreakStart,
		BreakEnd:   tpl.BreakEnd,
	}, s.interval)
	if err != nil {
		return nil, fmt.Errorf("generate slots: %w", err)
	}

	booked, err := s.appointments.BookedStarts(ctx, hospitalID, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("load booked slots: %w", err)
	}

	return &DayAvailability{
		Date:      date,
		Weekday:   weekday,
		Available: true,
		Slots:     slots,
		Booked:    booked,
	}, nil
}
