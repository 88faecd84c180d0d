package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

var ErrDiagnosisRequired = errors.New("diagnosis is required")

// SavePrescriptionRequest holds the doctor's prescription for one appointment.
// Medicines are a structured list; incomplete lines (missing name, dosage or
// frequency) are dropped rather than rejected, matching the form behaviour.
type SavePrescriptionRequest struct {
	AppointmentID uuid.UUID        `json:"appointment_id"`
	Diagnosis     string           `json:"diagnosis"`
	Medicines     []model.Medicine `json:"medicines"`
	Instructions  string           `json:"instructions"`
}

type PrescriptionService struct {
	prescriptions repository.PrescriptionRepository
	appointments  repository.AppointmentRepository
	events        repository.EventRepository
}

func NewPrescriptionService(
	prescriptions repository.PrescriptionRepository,
	appointments repository.AppointmentRepository,
	events repository.EventRepository,
) *PrescriptionService {
	return &PrescriptionService{
		prescriptions: prescriptions,
		appointments:  appointments,
		events:        events,
	}
}

// Save writes the prescription for an appointment, replacing any earlier one.
// When doctorID is non-nil the appointment must belong to that doctor.
func (s *PrescriptionService) Save(
	ctx context.Context,
	hospitalID uuid.UUID,
	doctorID *uuid.UUID,
	req SavePrescriptionRequest,
) (*model.Prescription, error) {
	if req.Diagnosis == "" {
		return nil, ErrDiagnosisRequired
	}

	appt, err := s.appointments.GetByID(ctx, hospitalID, req.AppointmentID)
	if err != nil {
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	if doctorID != nil && appt.DoctorID != *doctorID {
		// Another doctor's appointment is invisible, not forbidden.
		return nil, fmt.Errorf("load appointment: %w", gorm.ErrRecordNotFound)
	}

	medicines := make([]model.Medicine, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		if m.Name == "" || m.Dosage == "" || m.Frequency == "" {
			continue
		}
		if m.Meal == "" {
			m.Meal = "after"
		}
		medicines = append(medicines, m)
	}

	p := &model.Prescription{
		AppointmentID: req.AppointmentID,
		HospitalID:    hospitalID,
		Diagnosis:     req.Diagnosis,
		Medicines:     datatypes.NewJSONSlice(medicines),
		Instructions:  req.Instructions,
	}
	if err := s.prescriptions.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save prescription: %w", err)
	}

	if s.events != nil {
		_ = s.events.Record(ctx, &model.Event{
			EventType:     model.EventTypePrescriptionSaved,
			HospitalID:    hospitalID,
			AppointmentID: &req.AppointmentID,
			DoctorID:      doctorID,
		})
	}
	return p, nil
}

// Get returns the prescription for an appointment, or gorm.ErrRecordNotFound.
func (s *PrescriptionService) Get(
	ctx context.Context,
	hospitalID, appointmentID uuid.UUID,
) (*model.Prescription, error) {
	return s.prescriptions.GetByAppointment(ctx, hospitalID, appointmentID)
}
