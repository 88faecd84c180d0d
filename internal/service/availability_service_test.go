package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medivane/hospital-core/internal/model"
	"github.com/medivane/hospital-core/internal/slot"
)

// 2026-09-07 is a Monday.
const monday = "2026-09-07"

func TestResolveWithoutTemplateIsUnavailable(t *testing.T) {
	f := newFixture(t)

	day, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if day.Available {
		t.Fatal("expected day without template to be unavailable")
	}
	if len(day.Slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(day.Slots))
	}
	if day.Weekday != "Monday" {
		t.Fatalf("weekday = %q, want Monday", day.Weekday)
	}
}

func TestResolveGeneratesSlotsFromTemplate(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "10:30", "11:00")

	day, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !day.Available {
		t.Fatal("expected day to be available")
	}
	if len(day.Slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(day.Slots))
	}
	for _, sl := range day.Slots {
		if sl.Start >= "10:30" && sl.Start < "11:00" {
			t.Fatalf("slot %s falls inside the break", sl.Start)
		}
	}
	if len(day.Booked) != 0 {
		t.Fatalf("expected empty booked set, got %v", day.Booked)
	}
}

func TestResolveMarksTakenSlotsBooked(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	for _, seed := range []struct {
		timeSlot string
		status   model.AppointmentStatus
	}{
		{"09:00", model.StatusScheduled},
		{"09:15", model.StatusCancelled},
		{"09:30", model.StatusCompleted},
	} {
		a := &model.Appointment{
			PatientID:  f.patient.ID,
			DoctorID:   f.doctor.ID,
			HospitalID: f.hospital.ID,
			Date:       monday,
			TimeSlot:   seed.timeSlot,
			Status:     seed.status,
		}
		if err := f.db.Create(a).Error; err != nil {
			t.Fatalf("seed appointment %s: %v", seed.timeSlot, err)
		}
	}

	day, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !day.IsBooked("09:00") {
		t.Fatal("scheduled slot 09:00 should be booked")
	}
	if day.IsBooked("09:15") {
		t.Fatal("cancelled slot 09:15 should be free")
	}
	if !day.IsBooked("09:30") {
		t.Fatal("completed slot 09:30 should be booked")
	}
}

func TestResolveIsTenantScoped(t *testing.T) {
	f := newFixture(t)
	f.setTemplate(t, "Monday", "09:00", "12:00", "", "")

	other := uuid.New()
	day, err := f.availability.Resolve(context.Background(), other, f.doctor.ID, monday)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if day.Available {
		t.Fatal("template must not be visible to another hospital")
	}
}

func TestResolveRejectsMalformedDate(t *testing.T) {
	f := newFixture(t)

	if _, err := f.availability.Resolve(context.Background(), f.hospital.ID, f.doctor.ID, "07-09-2026"); !errors.Is(err, slot.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
