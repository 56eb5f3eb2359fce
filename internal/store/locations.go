package store

import (
	"context"
	"fmt"

	"carexpress-dispatch/internal/domain"
)

// AddLocation registers a new location. Names are unique.
func (s *EntityStore) AddLocation(ctx context.Context, loc domain.Location) (domain.Location, error) {
	loc, err := loc.Normalize()
	if err != nil {
		return domain.Location{}, err
	}

	err = s.mutate(domain.LocationCreated, func() (string, error) {
		if s.hasLocation(loc.Name) {
			return "", fmt.Errorf("%w: location %q", domain.ErrDuplicateKey, loc.Name)
		}

		next := appended(s.locations, loc)
		if err := s.persist(ctx, "locations", map[string]any{KeyLocations: next}); err != nil {
			return "", fmt.Errorf("add location: %w", err)
		}
		s.locations = next
		return loc.Name, nil
	})
	if err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

// UpdateLocation replaces the location called name. Renaming is allowed as
// long as the new name is free. Vehicles and orders referencing the old name
// are not rewritten.
func (s *EntityStore) UpdateLocation(ctx context.Context, name string, loc domain.Location) (domain.Location, error) {
	loc, err := loc.Normalize()
	if err != nil {
		return domain.Location{}, err
	}

	err = s.mutate(domain.LocationUpdated, func() (string, error) {
		i := s.locationIndex(name)
		if i < 0 {
			return "", fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
		}
		if loc.Name != name && s.hasLocation(loc.Name) {
			return "", fmt.Errorf("%w: location %q", domain.ErrDuplicateKey, loc.Name)
		}

		next := replaced(s.locations, i, loc)
		if err := s.persist(ctx, "locations", map[string]any{KeyLocations: next}); err != nil {
			return "", fmt.Errorf("update location: %w", err)
		}
		s.locations = next
		return loc.Name, nil
	})
	if err != nil {
		return domain.Location{}, err
	}
	return loc, nil
}

// DeleteLocation removes a location without checking references to it.
func (s *EntityStore) DeleteLocation(ctx context.Context, name string) error {
	return s.mutate(domain.LocationDeleted, func() (string, error) {
		i := s.locationIndex(name)
		if i < 0 {
			return "", fmt.Errorf("%w: %q", domain.ErrLocationNotFound, name)
		}

		next := without(s.locations, i)
		if err := s.persist(ctx, "locations", map[string]any{KeyLocations: next}); err != nil {
			return "", fmt.Errorf("delete location: %w", err)
		}
		s.locations = next
		return name, nil
	})
}
