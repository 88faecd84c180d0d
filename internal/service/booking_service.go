package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

// ScheduleAppointmentRequest books one slot for a patient.
type ScheduleAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"time_slot"`
	Notes     string    `json:"notes"`
}

// BookingService is the write path of the booking ledger. The availability
// resolver hides booked slots from callers, but the real double-booking guard
// is the partial unique index: when two writers race for the same slot the
// second insert fails and is reported as ErrSlotTaken.
type BookingService struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	availability *AvailabilityService
	events       repository.EventRepository
}

func NewBookingService(
	appointments repository.AppointmentRepository,
	patients repository.PatientRepository,
	availability *AvailabilityService,
	events repository.EventRepository,
) *BookingService {
	return &BookingService{
		appointments: appointments,
		patients:     patients,
		availability: availability,
		events:       events,
	}
}

// Schedule validates the request against the doctor's generated slots and
// inserts the appointment. The requested slot must exist in the candidate set;
// a conflicting non-cancelled appointment yields ErrSlotTaken.
func (s *BookingService) Schedule(
	ctx context.Context,
	hospitalID uuid.UUID,
	req ScheduleAppointmentRequest,
) (*model.Appointment, error) {
	if _, err := s.patients.GetByID(ctx, hospitalID, req.PatientID); err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}

	day, err := s.availability.Resolve(ctx, hospitalID, req.DoctorID, req.Date)
	if err != nil {
		return nil, err
	}
	if !day.Available {
		return nil, ErrUnknownSlot
	}

	found := false
	for _, sl := range day.Slots {
		if sl.Start == req.TimeSlot {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownSlot
	}
	if day.IsBooked(req.TimeSlot) {
		return nil, ErrSlotTaken
	}

	appt := &model.Appointment{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		HospitalID: hospitalID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Status:     model.StatusScheduled,
		Notes:      req.Notes,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		// A concurrent booking that slipped past the pre-check above hits the
		// partial unique index instead of silently double-booking.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.record(ctx, model.EventTypeAppointmentScheduled, hospitalID, &appt.ID, &appt.DoctorID,
		fmt.Sprintf("%s %s", appt.Date, appt.TimeSlot))

	return appt, nil
}

// UpdateStatus sets the appointment status. Doctors may write any status text;
// setting exactly StatusCancelled frees the slot. When doctorID is non-nil the
// update only touches that doctor's own appointments.
func (s *BookingService) UpdateStatus(
	ctx context.Context,
	hospitalID uuid.UUID,
	doctorID *uuid.UUID,
	appointmentID uuid.UUID,
	status model.AppointmentStatus,
) error {
	if status == "" {
		return ErrStatusRequired
	}
	if err := s.appointments.UpdateStatus(ctx, hospitalID, doctorID, appointmentID, status); err != nil {
		return err
	}

	eventType := model.EventTypeAppointmentUpdated
	if status == model.StatusCancelled {
		eventType = model.EventTypeAppointmentCancelled
	}
	s.record(ctx, eventType, hospitalID, &appointmentID, doctorID, string(status))
	return nil
}

// Cancel marks the appointment cancelled, which releases its slot for the next
// availability query.
func (s *BookingService) Cancel(
	ctx context.Context,
	hospitalID uuid.UUID,
	doctorID *uuid.UUID,
	appointmentID uuid.UUID,
) error {
	return s.UpdateStatus(ctx, hospitalID, doctorID, appointmentID, model.StatusCancelled)
}

// Delete removes the appointment permanently. Admin action, tenant-scoped.
func (s *BookingService) Delete(ctx context.Context, hospitalID, appointmentID uuid.UUID) error {
	if err := s.appointments.Delete(ctx, hospitalID, appointmentID); err != nil {
		return err
	}
	s.record(ctx, model.EventTypeAppointmentDeleted, hospitalID, &appointmentID, nil, "")
	return nil
}

// Get returns one appointment with patient and doctor loaded.
func (s *BookingService) Get(ctx context.Context, hospitalID, appointmentID uuid.UUID) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, hospitalID, appointmentID)
}

// List returns filtered appointments plus the unpaginated total.
func (s *BookingService) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	f repository.AppointmentFilter,
	limit, offset int,
) ([]model.Appointment, int64, error) {
	return s.appointments.List(ctx, hospitalID, f, limit, offset)
}

// Events returns the hospital's audit trail, newest first.
func (s *BookingService) Events(
	ctx context.Context,
	hospitalID uuid.UUID,
	limit, offset int,
) ([]model.Event, int64, error) {
	return s.events.ListByHospital(ctx, hospitalID, limit, offset)
}

// record writes an audit event. Audit is best effort and never fails the
// operation it describes.
func (s *BookingService) record(
	ctx context.Context,
	eventType model.EventType,
	hospitalID uuid.UUID,
	appointmentID, doctorID *uuid.UUID,
	details string,
) {
	if s.events == nil {
		return
	}
	_ = s.events.Record(ctx, &model.Event{
		EventType:     eventType,
		HospitalID:    hospitalID,
		AppointmentID: appointmentID,
		DoctorID:      doctorID,
		Details:       details,
	})
}
