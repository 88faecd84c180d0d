package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medivane/hospital-core/internal/model"
)

type PrescriptionRepository interface {
	// Upsert writes the prescription for an appointment, overwriting any
	// earlier one.
	Upsert(ctx context.Context, p *model.Prescription) error
	// GetByAppointment returns the prescription or gorm.ErrRecordNotFound.
	GetByAppointment(ctx context.Context, hospitalID, appointmentID uuid.UUID) (*model.Prescription, error)
}

type GormPrescriptionRepository struct {
	db *gorm.DB
}

func NewGormPrescriptionRepository(db *gorm.DB) *GormPrescriptionRepository {
	return &GormPrescriptionRepository{db: db}
}

func (r *GormPrescriptionRepository) Upsert(ctx context.Context, p *model.Prescription) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"diagnosis", "medicines", "instructions", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *GormPrescriptionRepository) GetByAppointment(
	ctx context.Context,
	hospitalID, appointmentID uuid.UUID,
) (*model.Prescription, error) {
	var p model.Prescription
	err := r.db.WithContext(ctx).
		First(&p, "appointment_id = ? AND hospital_id = ?", appointmentID, hospitalID).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
