package store

import (
	"context"
	"fmt"

	"carexpress-dispatch/internal/domain"
)

// AddVehicle registers a vehicle. The plate must be new and the current
// location must be registered.
func (s *EntityStore) AddVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	v, err := v.Normalize()
	if err != nil {
		return domain.Vehicle{}, err
	}

	err = s.mutate(domain.VehicleCreated, func() (string, error) {
		if s.vehicleIndex(v.Plate) >= 0 {
			return "", fmt.Errorf("%w: vehicle with plate %q", domain.ErrDuplicateKey, v.Plate)
		}
		if !s.hasLocation(v.CurrentLocation) {
			return "", fmt.Errorf("%w: current location %q of vehicle %q", domain.ErrDanglingReference, v.CurrentLocation, v.Plate)
		}

		next := appended(s.vehicles, v)
		if err := s.persist(ctx, "vehicles", map[string]any{KeyVehicles: next}); err != nil {
			return "", fmt.Errorf("add vehicle: %w", err)
		}
		s.vehicles = next
		return v.Plate, nil
	})
	if err != nil {
		return domain.Vehicle{}, err
	}
	return v, nil
}

// ReplaceVehicle is the full edit of the vehicle with the given plate,
// checked like AddVehicle. The plate may change when the new one is free.
func (s *EntityStore) ReplaceVehicle(ctx context.Context, plate string, v domain.Vehicle) (domain.Vehicle, error) {
	v, err := v.Normalize()
	if err != nil {
		return domain.Vehicle{}, err
	}

	err = s.mutate(domain.VehicleUpdated, func() (string, error) {
		i := s.vehicleIndex(plate)
		if i < 0 {
			return "", fmt.Errorf("%w: plate %q", domain.ErrVehicleNotFound, plate)
		}
		if v.Plate != plate && s.vehicleIndex(v.Plate) >= 0 {
			return "", fmt.Errorf("%w: vehicle with plate %q", domain.ErrDuplicateKey, v.Plate)
		}
		if !s.hasLocation(v.CurrentLocation) {
			return "", fmt.Errorf("%w: current location %q of vehicle %q", domain.ErrDanglingReference, v.CurrentLocation, v.Plate)
		}

		next := replaced(s.vehicles, i, v)
		if err := s.persist(ctx, "vehicles", map[string]any{KeyVehicles: next}); err != nil {
			return "", fmt.Errorf("replace vehicle: %w", err)
		}
		s.vehicles = next
		return v.Plate, nil
	})
	if err != nil {
		return domain.Vehicle{}, err
	}
	return v, nil
}

// UpdateVehicle applies patch to the vehicle with the given plate. Status and
// location change together. The location reference is not checked, and a
// patch that changes nothing is not written.
func (s *EntityStore) UpdateVehicle(ctx context.Context, plate string, patch domain.VehiclePatch) error {
	if patch.Status != nil {
		status, err := domain.ParseVehicleStatus(string(*patch.Status))
		if err != nil {
			return err
		}
		patch.Status = &status
	}

	return s.mutate(domain.VehicleUpdated, func() (string, error) {
		i := s.vehicleIndex(plate)
		if i < 0 {
			return "", fmt.Errorf("%w: plate %q", domain.ErrVehicleNotFound, plate)
		}

		v, changed := patch.Apply(s.vehicles[i])
		if !changed {
			return "", nil
		}

		next := replaced(s.vehicles, i, v)
		if err := s.persist(ctx, "vehicles", map[string]any{KeyVehicles: next}); err != nil {
			return "", fmt.Errorf("update vehicle: %w", err)
		}
		s.vehicles = next
		return plate, nil
	})
}

// DeleteVehicle removes the vehicle with the given plate.
func (s *EntityStore) DeleteVehicle(ctx context.Context, plate string) error {
	return s.mutate(domain.VehicleDeleted, func() (string, error) {
		i := s.vehicleIndex(plate)
		if i < 0 {
			return "", fmt.Errorf("%w: plate %q", domain.ErrVehicleNotFound, plate)
		}

		next := without(s.vehicles, i)
		if err := s.persist(ctx, "vehicles", map[string]any{KeyVehicles: next}); err != nil {
			return "", fmt.Errorf("delete vehicle: %w", err)
		}
		s.vehicles = next
		return plate, nil
	})
}
