package repository

import "errors"

var (
	// ErrDuplicatePatient is returned when a create collides with an existing
	// patient_id.
	ErrDuplicatePatient = errors.New("patient ID already exists")
)
