package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Patient, error)
	List(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]model.Patient, int64, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
}

type GormPatientRepository struct {
	db *gorm.DB
}

func NewGormPatientRepository(db *gorm.DB) *GormPatientRepository {
	return &GormPatientRepository{db: db}
}

func (r *GormPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *GormPatientRepository) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Patient, error) {
	var p model.Patient
	if err := r.db.WithContext(ctx).First(&p, "id = ? AND hospital_id = ?", id, hospitalID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPatientRepository) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	search string,
	limit, offset int,
) ([]model.Patient, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Patient{}).
		Where("hospital_id = ?", hospitalID)
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(name) LIKE ? OR lower(contact) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var patients []model.Patient
	if err := q.Order("created_at DESC").Find(&patients).Error; err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *GormPatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	return r.db.WithContext(ctx).
		Model(&model.Patient{}).
		Where("id = ? AND hospital_id = ?", patient.ID, patient.HospitalID).
		Updates(patient).Error
}

func (r *GormPatientRepository) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Delete(&model.Patient{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
