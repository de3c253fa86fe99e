package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrHasAppointments is returned when deleting a patient or doctor that
	// still has appointments referencing it. Deletion is restricted rather
	// than cascaded so that appointment history is never silently lost.
	ErrHasAppointments = errors.New("record has dependent appointments")

	// ErrInvalidStatus is returned when an appointment status is outside the
	// scheduled/completed/cancelled enumeration.
	ErrInvalidStatus = errors.New("invalid appointment status")
)
