package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/auth"
	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

// IdentityService handles admin registration and the two login paths. Admins
// authenticate with email, doctors with the username the admin assigned them;
// both receive a token bound to their hospital.
type IdentityService struct {
	hospitals repository.HospitalRepository
	doctors   repository.DoctorRepository
	tokens    *auth.Manager
}

func NewIdentityService(
	hospitals repository.HospitalRepository,
	doctors repository.DoctorRepository,
	tokens *auth.Manager,
) *IdentityService {
	return &IdentityService{hospitals: hospitals, doctors: doctors, tokens: tokens}
}

// RegisterHospital creates a new admin account and with it a new tenant.
func (s *IdentityService) RegisterHospital(
	ctx context.Context,
	name, adminName, email, password string,
) (*model.Hospital, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	h := &model.Hospital{
		Name:         name,
		AdminName:    adminName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.hospitals.Create(ctx, h); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create hospital: %w", err)
	}
	return h, nil
}

// LoginAdmin verifies admin credentials and issues a token whose tenant is the
// hospital itself.
func (s *IdentityService) LoginAdmin(ctx context.Context, email, password string) (string, *model.Hospital, error) {
	h, err := s.hospitals.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load hospital: %w", err)
	}
	if !auth.CheckPasswordHash(password, h.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(h.ID, auth.RoleAdmin, h.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, h, nil
}

// SetDoctorCredentials assigns a login to a doctor of this hospital.
func (s *IdentityService) SetDoctorCredentials(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	username, password string,
) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.doctors.SetCredentials(ctx, hospitalID, doctorID, username, hash); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// LoginDoctor verifies doctor credentials and issues a token scoped to the
// doctor's hospital.
func (s *IdentityService) LoginDoctor(ctx context.Context, username, password string) (string, *model.Doctor, error) {
	d, err := s.doctors.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("load doctor: %w", err)
	}
	if d.PasswordHash == "" || !auth.CheckPasswordHash(password, d.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(d.ID, auth.RoleDoctor, d.HospitalID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, d, nil
}
