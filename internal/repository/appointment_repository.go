package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
)

// AppointmentFilter narrows appointment listings. Zero values mean "no filter".
type AppointmentFilter struct {
	DoctorID      uuid.UUID
	PatientID     uuid.UUID
	Date          string
	Status        string
	PatientSearch string
}

type AppointmentRepository interface {
	// Create inserts a new appointment. A non-cancelled row already occupying
	// the same (doctor, date, slot, hospital) makes the insert fail with a
	// duplicate-key error from the storage layer.
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Appointment, error)
	// BookedStarts returns the slot-start strings of all non-cancelled
	// appointments for (doctor, date, hospital).
	BookedStarts(ctx context.Context, hospitalID, doctorID uuid.UUID, date string) ([]string, error)
	// UpdateStatus mutates the status of one appointment. When doctorID is
	// non-nil the update is additionally scoped to that doctor.
	UpdateStatus(ctx context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID, id uuid.UUID, status model.AppointmentStatus) error
	// Delete removes an appointment permanently.
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	// List returns filtered appointments with patient and doctor preloaded,
	// newest first, plus the unpaginated total.
	List(ctx context.Context, hospitalID uuid.UUID, f AppointmentFilter, limit, offset int) ([]model.Appointment, int64, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*model.Appointment, error) {
	var a model.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&a, "id = ? AND hospital_id = ?", id, hospitalID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) BookedStarts(
	ctx context.Context,
	hospitalID, doctorID uuid.UUID,
	date string,
) ([]string, error) {
	var starts []string
	err := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("doctor_id = ? AND date = ? AND hospital_id = ?", doctorID, date, hospitalID).
		Where("status <> ?", model.StatusCancelled).
		Pluck("time_slot", &starts).Error
	if err != nil {
		return nil, err
	}
	return starts, nil
}

func (r *GormAppointmentRepository) UpdateStatus(
	ctx context.Context,
	hospitalID uuid.UUID,
	doctorID *uuid.UUID,
	id uuid.UUID,
	status model.AppointmentStatus,
) error {
	q := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("id = ? AND hospital_id = ?", id, hospitalID)
	if doctorID != nil {
		q = q.Where("doctor_id = ?", *doctorID)
	}

	res := q.Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Delete(&model.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormAppointmentRepository) List(
	ctx context.Context,
	hospitalID uuid.UUID,
	f AppointmentFilter,
	limit, offset int,
) ([]model.Appointment, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&model.Appointment{}).
		Where("appointments.hospital_id = ?", hospitalID)

	if f.DoctorID != uuid.Nil {
		q = q.Where("appointments.doctor_id = ?", f.DoctorID)
	}
	if f.PatientID != uuid.Nil {
		q = q.Where("appointments.patient_id = ?", f.PatientID)
	}
	if f.Date != "" {
		q = q.Where("appointments.date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("appointments.status = ?", f.Status)
	}
	if f.PatientSearch != "" {
		q = q.Joins("JOIN patients ON patients.id = appointments.patient_id").
			Where("lower(patients.name) LIKE ?", "%"+strings.ToLower(f.PatientSearch)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var appts []model.Appointment
	err := q.Preload("Patient").
		Preload("Doctor").
		Order("appointments.date DESC, appointments.time_slot DESC").
		Find(&appts).Error
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}
