package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medivane/hospital-core/internal/model"
)

type ScheduleTemplateRepository interface {
	// Upsert replaces the template for (doctor, weekday, hospital) in one
	// statement, so a reader never observes a weekday without a template.
	Upsert(ctx context.Context, tpl *model.ScheduleTemplate) error
	// GetForWeekday returns the template or gorm.ErrRecordNotFound.
	GetForWeekday(ctx context.Context, hospitalID, doctorID uuid.UUID, weekday string) (*model.ScheduleTemplate, error)
	// ListByDoctor returns all templates of a doctor.
	ListByDoctor(ctx context.Context, hospitalID, doctorID uuid.UUID) ([]model.ScheduleTemplate, error)
	// Delete removes the template for one weekday.
	Delete(ctx context.Context, hospitalID, doctorID uuid.UUID, weekday string) error
}

type GormScheduleTemplateRepository struct {
	db *gorm.DB
}

func NewGormScheduleTemplateRepository(db *gorm.DB) *GormScheduleTemplateRepository {
	return &GormScheduleTemplateRepository{db: db}
}

func (r *GormScheduleTemplateRepository) Upsert(ctx context.Context, tpl *model.ScheduleTemplate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "doctor_id"}, {Name: "weekday"}, {Name: "hospital_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "break_start", "break_end", "updated_at",
			}),
		}).
		Create(tpl).Error
}

func (r *GormScheduleTemplateRepository) GetForWeekday(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	weekday string,
) (*model.ScheduleTemplate, error) {
	var tpl model.ScheduleTemplate
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ? AND hospital_id = ?", doctorID, weekday, hospitalID).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *GormScheduleTemplateRepository) ListByDoctor(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
) ([]model.ScheduleTemplate, error) {
	var tpls []model.ScheduleTemplate
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND hospital_id = ?", doctorID, hospitalID).
		Find(&tpls).Error
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *GormScheduleTemplateRepository) Delete(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	weekday string,
) error {
	return r.db.WithContext(ctx).
		Where("doctor_id = ? AND weekday = ? AND hospital_id = ?", doctorID, weekday, hospitalID).
		Delete(&model.ScheduleTemplate{}).Error
}
