package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

var ErrMissingFields = errors.New("required fields are missing")

// DoctorInput carries the admin-editable doctor profile fields.
type DoctorInput struct {
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	ExperienceYrs   int     `json:"experience_years"`
	ConsultationFee float64 `json:"consultation_fee"`
	Contact         string  `json:"contact"`
	Bio             string  `json:"bio"`
	PhotoPath       string  `json:"photo_path"`
}

type DoctorService struct {
	doctors repository.DoctorRepository
}

func NewDoctorService(doctors repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctors: doctors}
}

func (s *DoctorService) Create(ctx context.Context, hospitalID uuid.UUID, in DoctorInput) (*model.Doctor, error) {
	if in.Name == "" || in.Specialization == "" {
		return nil, ErrMissingFields
	}
	d := &model.Doctor{
		HospitalID:      hospitalID,
		Name:            in.Name,
		Specialization:  in.Specialization,
		ExperienceYrs:   in.ExperienceYrs,
		ConsultationFee: in.ConsultationFee,
		Contact:         in.Contact,
		Bio:             in.Bio,
		PhotoPath:       in.PhotoPath,
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return d, nil
}

func (s *DoctorService) Get(ctx context.Context, hospitalID, id uuid.UUID) (*model.Doctor, error) {
	return s.doctors.GetByID(ctx, hospitalID, id)
}

func (s *DoctorService) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	search string,
	limit, offset int,
) ([]model.Doctor, int64, error) {
	return s.doctors.List(ctx, hospitalID, search, limit, offset)
}

func (s *DoctorService) Update(ctx context.Context, hospitalID, id uuid.UUID, in DoctorInput) (*model.Doctor, error) {
	d, err := s.doctors.GetByID(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Specialization != "" {
		d.Specialization = in.Specialization
	}
	if in.ExperienceYrs != 0 {
		d.ExperienceYrs = in.ExperienceYrs
	}
	if in.ConsultationFee != 0 {
		d.ConsultationFee = in.ConsultationFee
	}
	if in.Contact != "" {
		d.Contact = in.Contact
	}
	if in.Bio != "" {
		d.Bio = in.Bio
	}
	if in.PhotoPath != "" {
		d.PhotoPath = in.PhotoPath
	}
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return d, nil
}

func (s *DoctorService) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.doctors.Delete(ctx, hospitalID, id)
}
