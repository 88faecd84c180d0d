package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Medicine is one line of a prescription. The timing flags say when during the
// day the medicine is taken; Meal is "before" or "after".
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Morning   bool   `json:"morning"`
	Afternoon bool   `json:"afternoon"`
	Evening   bool   `json:"evening"`
	Meal      string `json:"meal"`
}

// Prescription holds at most one record per appointment; saving again overwrites.
// Medicines are stored as a structured JSON list, not a delimited string.
type Prescription struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	HospitalID    uuid.UUID `gorm:"type:uuid;not null;index"`

	Diagnosis    string                        `gorm:"type:text;not null"`
	Medicines    datatypes.JSONSlice[Medicine] `gorm:"type:json"`
	Instructions string                        `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (p *Prescription) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
