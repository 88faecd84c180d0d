package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleTemplate is one row per (doctor, weekday, hospital). A new
// submission for the same weekday replaces the old one via upsert, so there is
// never a window with no template. Times are wall-clock HH:MM strings with no
// timezone; break columns stay empty when no break is configured.
type ScheduleTemplate struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	DoctorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_template_doctor_day"`
	Weekday    string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_template_doctor_day"`
	HospitalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_template_doctor_day;index"`

	StartTime  string `gorm:"type:varchar(8);not null"`
	EndTime    string `gorm:"type:varchar(8);not null"`
	BreakStart string `gorm:"type:varchar(8)"`
	BreakEnd   string `gorm:"type:varchar(8)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (t *ScheduleTemplate) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
