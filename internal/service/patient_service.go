package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

// PatientInput carries the admin-editable patient fields.
type PatientInput struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Contact        string `json:"contact"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

type PatientService struct {
	patients repository.PatientRepository
}

func NewPatientService(patients repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

func (s *PatientService) Create(ctx context.Context, hospitalID uuid.UUID, in PatientInput) (*model.Patient, error) {
	if in.Name == "" || in.Age <= 0 {
		return nil, ErrMissingFields
	}
	p := &model.Patient{
		HospitalID:     hospitalID,
		Name:           in.Name,
		Age:            in.Age,
		Gender:         in.Gender,
		Contact:        in.Contact,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *PatientService) Get(ctx context.Context, hospitalID, id uuid.UUID) (*model.Patient, error) {
	return s.patients.GetByID(ctx, hospitalID, id)
}

func (s *PatientService) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	search string,
	limit, offset int,
) ([]model.Patient, int64, error) {
	return s.patients.List(ctx, hospitalID, search, limit, offset)
}

func (s *PatientService) Update(ctx context.Context, hospitalID, id uuid.UUID, in PatientInput) (*model.Patient, error) {
	p, err := s.patients.GetByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Age > 0 {
		p.Age = in.Age
	}
	if in.Gender != "" {
		p.Gender = in.Gender
	}
	if in.Contact != "" {
		p.Contact = in.Contact
	}
	if in.Address != "" {
		p.Address = in.Address
	}
	if in.MedicalHistory != "" {
		p.MedicalHistory = in.MedicalHistory
	}
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *PatientService) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.patients.Delete(ctx, hospitalID, id)
}
