package domain

import (
	"fmt"
	"math"
	"strings"
)

// Represents a named point used as an order origin, an order destination
// or a vehicle position. Name is the primary key.
type Location struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Return the location coordinates.
func (l Location) Point() Point { return Point{X: l.X, Y: l.Y} }

// Normalize trims the name and reports invalid fields.
func (l Location) Normalize() (Location, error) {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return Location{}, fmt.Errorf("%w: location name must not be empty", ErrInvalidInput)
	}
	if !finite(l.X) || !finite(l.Y) {
		return Location{}, fmt.Errorf("%w: location %q coordinates must be finite numbers", ErrInvalidInput, l.Name)
	}
	return l, nil
}

// FindLocation returns the location with the given name.
func FindLocation(locations []Location, name string) (Location, bool) {
	for _, l := range locations {
		if l.Name == name {
			return l, true
		}
	}
	return Location{}, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
