package domain

import "math"

// Immutable planar coordinates in abstract distance units.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Return the distance from p to q.
func (p Point) DistanceTo(q Point) float64 { return Distance(p.X, p.Y, q.X, q.Y) }
