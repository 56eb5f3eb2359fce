package store

import (
	"context"
	"fmt"
	"slices"

	"carexpress-dispatch/internal/domain"
)

// Backup exports the full snapshot stamped with the current time.
func (s *EntityStore) Backup() domain.Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Backup{
		Locations: slices.Clone(s.locations),
		Vehicles:  slices.Clone(s.vehicles),
		Orders:    slices.Clone(s.orders),
		Timestamp: domain.FormatBackupTimestamp(s.now()),
	}
}

// Restore replaces the collections present in snap and leaves the others
// untouched. Restored records are validated, references between them are
// not. The order id counter never moves backwards.
func (s *EntityStore) Restore(ctx context.Context, snap domain.RestoreSnapshot) error {
	if snap.Empty() {
		return fmt.Errorf("%w: no locations, vehicles or orders found", domain.ErrInvalidBackup)
	}

	var (
		locations []domain.Location
		vehicles  []domain.Vehicle
		orders    []domain.Order
		err       error
	)
	if snap.Locations != nil {
		if locations, err = validLocations(*snap.Locations); err != nil {
			return err
		}
	}
	if snap.Vehicles != nil {
		if vehicles, err = validVehicles(*snap.Vehicles); err != nil {
			return err
		}
	}
	if snap.Orders != nil {
		if orders, err = validOrders(*snap.Orders); err != nil {
			return err
		}
	}

	return s.mutate(domain.StoreRestored, func() (string, error) {
		nextID := s.nextOrderID
		entries := map[string]any{}
		if locations != nil {
			entries[KeyLocations] = locations
		}
		if vehicles != nil {
			entries[KeyVehicles] = vehicles
		}
		if orders != nil {
			entries[KeyOrders] = orders
			nextID = max(nextID, nextIDAfter(orders))
			entries[KeyNextOrderID] = nextID
		}

		if err := s.persist(ctx, "restore", entries); err != nil {
			return "", fmt.Errorf("restore: %w", err)
		}

		if locations != nil {
			s.locations = locations
		}
		if vehicles != nil {
			s.vehicles = vehicles
		}
		if orders != nil {
			s.orders = orders
		}
		s.nextOrderID = nextID
		return "snapshot", nil
	})
}

func validLocations(in []domain.Location) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, l := range in {
		l, err := l.Normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: location #%d: %w", domain.ErrInvalidBackup, i+1, err)
		}
		if _, ok := seen[l.Name]; ok {
			return nil, fmt.Errorf("%w: location #%d: %w: location %q", domain.ErrInvalidBackup, i+1, domain.ErrDuplicateKey, l.Name)
		}
		seen[l.Name] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

func validVehicles(in []domain.Vehicle) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, v := range in {
		v, err := v.Normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: vehicle #%d: %w", domain.ErrInvalidBackup, i+1, err)
		}
		if _, ok := seen[v.Plate]; ok {
			return nil, fmt.Errorf("%w: vehicle #%d: %w: vehicle with plate %q", domain.ErrInvalidBackup, i+1, domain.ErrDuplicateKey, v.Plate)
		}
		seen[v.Plate] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func validOrders(in []domain.Order) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for i, o := range in {
		if o.ID <= 0 {
			return nil, fmt.Errorf("%w: order #%d: id must be positive, got %d", domain.ErrInvalidBackup, i+1, o.ID)
		}
		if _, ok := seen[o.ID]; ok {
			return nil, fmt.Errorf("%w: order #%d: %w: order id %d", domain.ErrInvalidBackup, i+1, domain.ErrDuplicateKey, o.ID)
		}
		fields, err := o.Input().Normalize()
		if err != nil {
			return nil, fmt.Errorf("%w: order #%d: %w", domain.ErrInvalidBackup, i+1, err)
		}
		seen[o.ID] = struct{}{}
		out = append(out, fields.WithID(o.ID))
	}
	return out, nil
}
