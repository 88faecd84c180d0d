package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital is one row per admin account. The hospital is the tenant boundary:
// every doctor, patient and appointment row carries its HospitalID and every
// query is filtered by it.
type Hospital struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name string `gorm:"type:varchar(255);not null"`

	// Admin login.
	AdminName    string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Doctors  []Doctor  `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Patients []Patient `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (h *Hospital) BeforeCreate(*gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
