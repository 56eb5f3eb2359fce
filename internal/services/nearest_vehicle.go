package services

import (
	"math"

	"carexpress-dispatch/internal/domain"
)

// Closest available vehicle and its distance to the target.
type NearestVehicle struct {
	Vehicle  domain.Vehicle
	Distance float64
}

// FindNearestAvailable returns the available vehicle closest to target.
//
// Vehicles whose current location no longer resolves are treated as
// unreachable and skipped. On equal distances the vehicle seen first in
// iteration order wins. ok is false when no vehicle qualifies.
func FindNearestAvailable(
	vehicles []domain.Vehicle,
	locations []domain.Location,
	target domain.Location,
) (nearest NearestVehicle, ok bool) {
	byName := make(map[string]domain.Location, len(locations))
	for _, l := range locations {
		if _, dup := byName[l.Name]; !dup {
			byName[l.Name] = l
		}
	}

	minDistance := math.Inf(1)
	for _, v := range vehicles {
		if !v.IsAvailable() {
			continue
		}

		at, found := byName[v.CurrentLocation]
		if !found {
			continue
		}

		// Strict comparison keeps the earliest vehicle on ties.
		d := at.Point().DistanceTo(target.Point())
		if d < minDistance {
			minDistance = d
			nearest = NearestVehicle{Vehicle: v, Distance: d}
			ok = true
		}
	}

	return nearest, ok
}
