package backup

import (
	"context"
	"errors"
	"fmt"

	"carexpress-dispatch/internal/domain"
)

// Restorer is the part of the entity store used for seeding.
type Restorer interface {
	Restore(ctx context.Context, snap domain.RestoreSnapshot) error
	ListLocations() []domain.Location
	ListVehicles() []domain.Vehicle
	ListOrders() []domain.Order
}

var ErrStoreNotEmpty = errors.New("store is not empty")

// SeedFromJSON restores the backup document at path into an empty store.
func SeedFromJSON(ctx context.Context, s Restorer, path string) error {
	if len(s.ListLocations()) > 0 || len(s.ListVehicles()) > 0 || len(s.ListOrders()) > 0 {
		return fmt.Errorf("seed %q: %w", path, ErrStoreNotEmpty)
	}

	snap, err := ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := s.Restore(ctx, snap); err != nil {
		return fmt.Errorf("seed %q: %w", path, err)
	}
	return nil
}
