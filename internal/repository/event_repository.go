package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
)

type EventRepository interface {
	Record(ctx context.Context, event *model.Event) error
	ListByHospital(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]model.Event, int64, error)
}

type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Record(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *GormEventRepository) ListByHospital(
	ctx context.Context,
	hospitalID uuid.UUID,
	limit, offset int,
) ([]model.Event, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("hospital_id = ?", hospitalID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var events []model.Event
	if err := q.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
