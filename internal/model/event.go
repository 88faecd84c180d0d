package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit event type.
type EventType string

const (
	EventTypeAppointmentScheduled EventType = "appointment_scheduled"
	EventTypeAppointmentCancelled EventType = "appointment_cancelled"
	EventTypeAppointmentUpdated   EventType = "appointment_updated"
	EventTypeAppointmentDeleted   EventType = "appointment_deleted"
	EventTypePrescriptionSaved    EventType = "prescription_saved"
)

// Event is one audit record of the booking lifecycle, scoped per hospital.
type Event struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EventType EventType `gorm:"type:varchar(64);not null;index"`

	HospitalID uuid.UUID `gorm:"type:uuid;not null;index"`

	CreatedAt time.Time `gorm:"not null;index"`

	AppointmentID *uuid.UUID `gorm:"type:uuid;index"`
	DoctorID      *uuid.UUID `gorm:"type:uuid;index"`

	Details string `gorm:"type:text"`
}

func (e *Event) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
