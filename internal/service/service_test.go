package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

// newTestDB opens an in-memory sqlite database with the full schema,
// including the partial unique index guarding the booking ledger.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A fresh connection would see a fresh in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	hospital *model.Hospital
	doctor   *model.Doctor
	patient  *model.Patient

	availability  *AvailabilityService
	bookings      *BookingService
	schedules     *ScheduleService
	prescriptions *PrescriptionService
}

// newFixture seeds one hospital with one doctor and one patient and wires the
// services the way main does.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	hospital := &model.Hospital{
		Name:         "City General Hospital",
		AdminName:    "Admin",
		Email:        "admin@hospital.test",
		PasswordHash: "x",
	}
	if err := db.Create(hospital).Error; err != nil {
		t.Fatalf("seed hospital: %v", err)
	}

	doctor := &model.Doctor{
		HospitalID:     hospital.ID,
		Name:           "Dr. Mensah",
		Specialization: "Cardiology",
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	patient := &model.Patient{
		HospitalID: hospital.ID,
		Name:       "Alice Mwangi",
		Age:        34,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	templateRepo := repository.NewGormScheduleTemplateRepository(db)
	appointmentRepo := repository.NewGormAppointmentRepository(db)
	patientRepo := repository.NewGormPatientRepository(db)
	doctorRepo := repository.NewGormDoctorRepository(db)
	prescriptionRepo := repository.NewGormPrescriptionRepository(db)
	eventRepo := repository.NewGormEventRepository(db)

	availability := NewAvailabilityService(templateRepo, appointmentRepo, 15*time.Minute)

	return &fixture{
		db:            db,
		hospital:      hospital,
		doctor:        doctor,
		patient:       patient,
		availability:  availability,
		bookings:      NewBookingService(appointmentRepo, patientRepo, availability, eventRepo),
		schedules:     NewScheduleService(templateRepo, doctorRepo),
		prescriptions: NewPrescriptionService(prescriptionRepo, appointmentRepo, eventRepo),
	}
}

// seedSecondHospital creates another tenant and returns its ID.
func (f *fixture) seedSecondHospital(t *testing.T) uuid.UUID {
	t.Helper()
	h := &model.Hospital{
		Name:         "Riverside Clinic",
		AdminName:    "Admin",
		Email:        "admin@riverside.test",
		PasswordHash: "x",
	}
	if err := f.db.Create(h).Error; err != nil {
		t.Fatalf("seed second hospital: %v", err)
	}
	return h.ID
}

// setTemplate installs a weekday template through the schedule service.
func (f *fixture) setTemplate(t *testing.T, weekday, start, end, breakStart, breakEnd string) {
	t.Helper()
	_, err := f.schedules.SetTemplate(context.Background(), f.hospital.ID, SetTemplateRequest{
		DoctorID:   f.doctor.ID,
		Weekday:    weekday,
		StartTime:  start,
		EndTime:    end,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
	})
	if err != nil {
		t.Fatalf("set template: %v", err)
	}
}
