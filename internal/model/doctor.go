package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// doctors
type Doctor struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	HospitalID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name            string  `gorm:"type:varchar(255);not null"`
	Specialization  string  `gorm:"type:varchar(255);not null"`
	ExperienceYrs   int     `gorm:"type:int"`
	ConsultationFee float64 `gorm:"type:decimal(10,2)"`
	Contact         string  `gorm:"type:varchar(64)"`
	Bio             string  `gorm:"type:text"`
	PhotoPath       string  `gorm:"type:varchar(512)"`

	// Login credentials, assigned by the admin after the profile exists.
	// Username stays nil until then.
	Username     *string `gorm:"type:varchar(64);uniqueIndex"`
	PasswordHash string  `gorm:"type:varchar(255)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Hospital  *Hospital          `gorm:"foreignKey:HospitalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Templates []ScheduleTemplate `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (d *Doctor) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
