package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/repository"
)

func TestScheduleBooksFreeSlot(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "10:30", "11:00")

	appt, err := f.bookings.Schedule(context.Background(), f.hospital.ID, ScheduleAppointmentRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "09:30",
		Notes:     "follow-up",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if appt.Status != model.StatusScheduled {
		t.Fatalf("status = %q, want %q", appt.Status, model.StatusScheduled)
	}

	day, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !day.IsBooked("09:30") {
		t.Fatal("booked slot should appear in the booked set")
	}
}

func TestScheduleRejectsTakenSlot(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	req := ScheduleAppointmentRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "09:00",
	}
	if _, err := f.bookings.Schedule(context.Background(), f.hospital.ID, req); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := f.bookings.Schedule(context.Background(), f.hospital.ID, req); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestScheduleRejectsSlotOutsideTemplate(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "10:30", "11:00")

	cases := []struct {
		name     string
		date     string
		timeSlot string
	}{
		{"before opening", monday, "08:00"},
		{"inside break", monday, "10:30"},
		{"off grid", monday, "09:10"},
		{"no template for weekday", "2026-09-08", "09:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.bookings.Schedule(context.Background(), f.hospital.ID, ScheduleAppointmentRequest{
				PatientID: f.patient.ID,
				DoctorID:  f.doctor.ID,
				Date:      tc.date,
				TimeSlot:  tc.timeSlot,
			})
			if !errors.Is(err, ErrUnknownSlot) {
				t.Fatalf("expected ErrUnknownSlot, got %v", err)
			}
		})
	}
}

func TestScheduleRejectsUnknownPatient(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	_, err := f.bookings.Schedule(context.Background(), f.hospital.ID, ScheduleAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "09:00",
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// The service pre-check can be raced past; the partial unique index is the
// guard of record. Inserting the same active slot twice at the storage layer
// must fail, while a cancelled row must not block a new booking.
func TestActiveSlotUniqueIndex(t *testing.T) {
	f := newFixture(t)

	mk := func(status model.AppointmentStatus) *model.Appointment {
		return &model.Appointment{
			PatientID:  f.patient.ID,
			DoctorID:   f.doctor.ID,
			HospitalID: f.hospital.ID,
			Date:       monday,
			TimeSlot:   "09:00",
			Status:     status,
		}
	}

	if err := f.db.Create(mk(model.StatusScheduled)).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := f.db.Create(mk(model.StatusScheduled)).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	if err := f.db.Model(&model.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time_slot = ?", f.doctor.ID, monday, "09:00").
		Update("status", model.StatusCancelled).Error; err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.db.Create(mk(model.StatusScheduled)).Error; err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	req := ScheduleAppointmentRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "11:45",
	}
	appt, err := f.bookings.Schedule(context.Background(), f.hospital.ID, req)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if err := f.bookings.Cancel(context.Background(), f.hospital.ID, nil, appt.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	day, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if day.IsBooked("11:45") {
		t.Fatal("cancelled slot should be free again")
	}

	if _, err := f.bookings.Schedule(context.Background(), f.hospital.ID, req); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}
}

func TestUpdateStatusScopedToDoctor(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	appt, err := f.bookings.Schedule(context.Background(), f.hospital.ID, ScheduleAppointmentRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "10:00",
	})
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	other := uuid.New()
	err = f.bookings.UpdateStatus(context.Background(), f.hospital.ID, &other, appt.ID, model.StatusCompleted)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign doctor, got %v", err)
	}

	if err := f.bookings.UpdateStatus(context.Background(), f.hospital.ID, &f.doctor.ID, appt.ID, model.StatusCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := f.bookings.Get(context.Background(), f.hospital.ID, appt.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.StatusCompleted {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusCompleted)
	}
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	f := newFixture(t)

	err := f.bookings.UpdateStatus(context.Background(), f.hospital.ID, nil, uuid.New(), "")
	if !errors.Is(err, ErrStatusRequired) {
		t.Fatalf("expected ErrStatusRequired, got %v", err)
	}
}

func TestListAppointmentsFilters(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")
	ctx := context.Background()

	second := &model.Patient{HospitalID: f.hospital.ID, Name: "Zainab Hassan", Age: 29}
	if err := f.db.Create(second).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	for _, b := range []struct {
		patientID uuid.UUID
		timeSlot  string
	}{
		{f.patient.ID, "09:00"},
		{second.ID, "09:15"},
		{second.ID, "09:30"},
	} {
		if _, err := f.bookings.Schedule(ctx, f.hospital.ID, ScheduleAppointmentRequest{
			PatientID: b.patientID,
			DoctorID:  f.doctor.ID,
			Date:      monday,
			TimeSlot:  b.timeSlot,
		}); err != nil {
			t.Fatalf("seed booking %s: %v", b.timeSlot, err)
		}
	}

	all, total, err := f.bookings.List(ctx, f.hospital.ID, repository.AppointmentFilter{}, 20, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected 3 appointments, got %d (total %d)", len(all), total)
	}
	if all[0].TimeSlot != "09:30" {
		t.Fatalf("expected newest first, got %s", all[0].TimeSlot)
	}
	if all[0].Patient == nil || all[0].Patient.Name == "" {
		t.Fatal("patient should be preloaded")
	}

	byPatient, total, err := f.bookings.List(ctx, f.hospital.ID, repository.AppointmentFilter{PatientSearch: "zainab"}, 20, 0)
	if err != nil {
		t.Fatalf("list by patient search: %v", err)
	}
	if total != 2 || len(byPatient) != 2 {
		t.Fatalf("search expected 2 appointments, got %d (total %d)", len(byPatient), total)
	}

	_, total, err = f.bookings.List(ctx, uuid.New(), repository.AppointmentFilter{}, 20, 0)
	if err != nil {
		t.Fatalf("list foreign tenant: %v", err)
	}
	if total != 0 {
		t.Fatalf("appointments leaked across tenants: total %d", total)
	}
}

func TestScheduleRecordsEvent(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	if _, err := f.bookings.Schedule(context.Background(), f.hospital.ID, ScheduleAppointmentRequest{
		PatientID: f.patient.ID,
		DoctorID:  f.doctor.ID,
		Date:      monday,
		TimeSlot:  "09:00",
	}); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	var events []model.Event
	if err := f.db.Where("hospital_id = ?", f.hospital.ID).Find(&events).Error; err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].EventType != model.EventTypeAppointmentScheduled {
		t.Fatalf("event type = %q, want %q", events[0].EventType, model.EventTypeAppointmentScheduled)
	}
}
