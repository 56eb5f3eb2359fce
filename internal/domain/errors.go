package domain

import "errors"

// Validation and lookup failures. Callers match them with errors.Is; the
// wrapped message is meant to be shown to the user as is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicateKey      = errors.New("already registered")
	ErrDanglingReference = errors.New("location not registered")

	ErrLocationNotFound = errors.New("location not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrLocationMissing    = errors.New("order location no longer exists")
	ErrNoVehicleAvailable = errors.New("no available vehicle")
	ErrNoAssignment       = errors.New("no route calculated")

	ErrInvalidBackup = errors.New("invalid backup file")
)
