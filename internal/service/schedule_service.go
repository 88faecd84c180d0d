package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
	"github.com/medivane/hospital-core/internal/slot"
)

// SetTemplateRequest configures a doctor's working hours for one weekday.
type SetTemplateRequest struct {
	DoctorID   uuid.UUID `json:"doctor_id"`
	Weekday    string    `json:"weekday"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	BreakStart string    `json:"break_start"`
	BreakEnd   string    `json:"break_end"`
}

type ScheduleService struct {
	templates repository.ScheduleTemplateRepository
	doctors   repository.DoctorRepository
}

func NewScheduleService(
	templates repository.ScheduleTemplateRepository,
	doctors repository.DoctorRepository,
) *ScheduleService {
	return &ScheduleService{templates: templates, doctors: doctors}
}

// SetTemplate validates and stores the weekday template. A template already
// present for (doctor, weekday) is replaced atomically.
func (s *ScheduleService) SetTemplate(
	ctx context.Context,
	hospitalID uuid.UUID,
	req SetTemplateRequest,
) (*model.ScheduleTemplate, error) {
	if !slot.IsWeekday(req.Weekday) {
		return nil, fmt.Errorf("%w: unknown weekday %q", slot.ErrInvalidWindow, req.Weekday)
	}
	w := slot.Window{
		Start:      req.StartTime,
		End:        req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}

	// The doctor must belong to this hospital.
	if _, err := s.doctors.GetByID(ctx, hospitalID, req.DoctorID); err != nil {
		return nil, fmt.Errorf("load doctor: %w", err)
	}

	tpl := &model.ScheduleTemplate{
		DoctorID:   req.DoctorID,
		Weekday:    req.Weekday,
		HospitalID: hospitalID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	}
	if err := s.templates.Upsert(ctx, tpl); err != nil {
		return nil, fmt.Errorf("save schedule template: %w", err)
	}
	return tpl, nil
}

// ListTemplates returns the doctor's templates in weekday order, Monday first.
func (s *ScheduleService) ListTemplates(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
) ([]model.ScheduleTemplate, error) {
	tpls, err := s.templates.ListByDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list schedule templates: %w", err)
	}
	sort.Slice(tpls, func(i, j int) bool {
		return slot.WeekdayIndex(tpls[i].Weekday) < slot.WeekdayIndex(tpls[j].Weekday)
	})
	return tpls, nil
}

// DeleteTemplate removes the template for one weekday.
func (s *ScheduleService) DeleteTemplate(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	weekday string,
) error {
	if !slot.IsWeekday(weekday) {
		return fmt.Errorf("%w: unknown weekday %q", slot.ErrInvalidWindow, weekday)
	}
	return s.templates.Delete(ctx, hospitalID, doctorID, weekday)
}
