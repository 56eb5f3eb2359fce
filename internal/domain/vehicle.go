package domain

import (
	"fmt"
	"strings"
)

type VehicleStatus string

const (
	StatusAvailable VehicleStatus = "available"
	StatusBusy      VehicleStatus = "busy"
)

// ParseVehicleStatus accepts the two persisted status values.
func ParseVehicleStatus(s string) (VehicleStatus, error) {
	switch VehicleStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusBusy:
		return StatusBusy, nil
	}
	return "", fmt.Errorf("%w: unknown vehicle status %q (want %q or %q)", ErrInvalidInput, s, StatusAvailable, StatusBusy)
}

// Delivery vehicle identified by its plate.
// CurrentLocation references Location.Name and is only checked when the
// vehicle is created or edited.
type Vehicle struct {
	Plate           string        `json:"plate"`
	Model           string        `json:"model"`
	Status          VehicleStatus `json:"status"`
	CurrentLocation string        `json:"currentLocation"`
}

// Report whether the vehicle may be assigned to a new order.
func (v Vehicle) IsAvailable() bool { return v.Status == StatusAvailable }

// Normalize trims text fields and validates the status.
func (v Vehicle) Normalize() (Vehicle, error) {
	v.Plate = strings.TrimSpace(v.Plate)
	v.Model = strings.TrimSpace(v.Model)
	v.CurrentLocation = strings.TrimSpace(v.CurrentLocation)

	if v.Plate == "" {
		return Vehicle{}, fmt.Errorf("%w: vehicle plate must not be empty", ErrInvalidInput)
	}
	if v.Model == "" {
		return Vehicle{}, fmt.Errorf("%w: vehicle %q model must not be empty", ErrInvalidInput, v.Plate)
	}
	if v.CurrentLocation == "" {
		return Vehicle{}, fmt.Errorf("%w: vehicle %q current location must not be empty", ErrInvalidInput, v.Plate)
	}

	status, err := ParseVehicleStatus(string(v.Status))
	if err != nil {
		return Vehicle{}, fmt.Errorf("vehicle %q: %w", v.Plate, err)
	}
	v.Status = status

	return v, nil
}

// Partial vehicle update. Nil fields are left untouched; when both are set
// they are applied together.
type VehiclePatch struct {
	Status          *VehicleStatus
	CurrentLocation *string
}

// Apply returns v with the patch applied and whether anything changed.
func (p VehiclePatch) Apply(v Vehicle) (Vehicle, bool) {
	changed := false
	if p.Status != nil && *p.Status != v.Status {
		v.Status = *p.Status
		changed = true
	}
	if p.CurrentLocation != nil && *p.CurrentLocation != v.CurrentLocation {
		v.CurrentLocation = *p.CurrentLocation
		changed = true
	}
	return v, changed
}
