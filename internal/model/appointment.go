package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

// Status is free text on the doctor's update path; these are the values the
// rest of the system gives meaning to. Anything other than exactly
// StatusCancelled keeps the slot occupied.
const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is one row of the booking ledger. Date is the ISO calendar date and
// TimeSlot the HH:MM start of a generated slot. The partial unique index on
// (doctor_id, date, time_slot, hospital_id) for non-cancelled rows (created in
// Migrate) is what makes double-booking impossible under concurrent writes.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	PatientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	HospitalID uuid.UUID `gorm:"type:uuid;not null;index"`

	Date     string            `gorm:"type:varchar(10);not null;index"`
	TimeSlot string            `gorm:"type:varchar(8);not null"`
	Status   AppointmentStatus `gorm:"type:varchar(64);not null;default:'Scheduled';index"`
	Notes    string            `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
