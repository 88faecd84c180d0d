package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// patients
type Patient struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	HospitalID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name           string `gorm:"type:varchar(255);not null"`
	Age            int    `gorm:"not null"`
	Gender         string `gorm:"type:varchar(16)"`
	Contact        string `gorm:"type:varchar(64)"`
	Address        string `gorm:"type:text"`
	MedicalHistory string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Hospital *Hospital `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (p *Patient) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
