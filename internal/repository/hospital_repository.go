package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
)

type HospitalRepository interface {
	Create(ctx context.Context, hospital *model.Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Hospital, error)
	GetByEmail(ctx context.Context, email string) (*model.Hospital, error)
}

type GormHospitalRepository struct {
	db *gorm.DB
}

func NewGormHospitalRepository(db *gorm.DB) *GormHospitalRepository {
	return &GormHospitalRepository{db: db}
}

func (r *GormHospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *GormHospitalRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Hospital, error) {
	var h model.Hospital
	if err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormHospitalRepository) GetByEmail(ctx context.Context, email string) (*model.Hospital, error) {
	var h model.Hospital
	if err := r.db.WithContext(ctx).First(&h, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
