package service

import "errors"

var (
	// ErrSlotTaken: another non-cancelled appointment already occupies the
	// requested (doctor, date, slot) in this hospital.
	ErrSlotTaken = errors.New("time slot is already taken")
	// ErrUnknownSlot: the requested slot start does not match any generated
	// slot for the doctor's schedule on that date.
	ErrUnknownSlot = errors.New("time slot is not bookable for this doctor and date")
	// ErrEmailTaken: an admin account with this email already exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUsernameTaken: a doctor login with this username already exists.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials: login failed; deliberately does not say which
	// part was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStatusRequired: the doctor submitted an empty status.
	ErrStatusRequired = errors.New("status is required")
)
