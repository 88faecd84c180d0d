package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Doctor, error)
	// GetByUsername looks a doctor up for login; not tenant-scoped because the
	// username is unique across hospitals.
	GetByUsername(ctx context.Context, username string) (*model.Doctor, error)
	List(ctx context.Context, hospitalID uuid.UUID, search string, limit, offset int) ([]model.Doctor, int64, error)
	// SetCredentials assigns or replaces the doctor's login.
	SetCredentials(ctx context.Context, hospitalID, id uuid.UUID, username, passwordHash string) error
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
}

type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Create(doctor).Error
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Doctor, error) {
	var d model.Doctor
	if err := r.db.WithContext(ctx).First(&d, "id = ? AND hospital_id = ?", id, hospitalID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDoctorRepository) GetByUsername(ctx context.Context, username string) (*model.Doctor, error) {
	var d model.Doctor
	if err := r.db.WithContext(ctx).First(&d, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *GormDoctorRepository) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	search string,
	limit, offset int,
) ([]model.Doctor, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("hospital_id = ?", hospitalID)
	if search != "" {
		// lower() keeps the match case-insensitive on both sqlite and postgres.
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(name) LIKE ? OR lower(specialization) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var doctors []model.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *GormDoctorRepository) SetCredentials(
	ctx context.Context,
	hospitalID, id uuid.UUID,
	username, passwordHash string,
) error {
	res := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		Updates(map[string]any{
			"username":      username,
			"password_hash": passwordHash,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormDoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("id = ? AND hospital_id = ?", doctor.ID, doctor.HospitalID).
		Updates(doctor).Error
}

func (r *GormDoctorRepository) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Delete(&model.Doctor{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
