package model

import "gorm.io/gorm"

// AutoMigrate migrates every entity of the hospital core and installs the
// booking-conflict index.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Hospital{},
		&Doctor{},
		&Patient{},
		&ScheduleTemplate{},
		&Appointment{},
		&Prescription{},
		&Event{},
	); err != nil {
		return err
	}

	// Partial unique index: at most one non-cancelled appointment per
	// (doctor, date, slot, hospital). AutoMigrate cannot express the WHERE
	// clause, and pushing the invariant into storage is what makes concurrent
	// double-booking fail instead of racing. Valid on both SQLite and Postgres.
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
		 ON appointments (doctor_id, date, time_slot, hospital_id)
		 WHERE status <> 'Cancelled'`,
	).Error
}
