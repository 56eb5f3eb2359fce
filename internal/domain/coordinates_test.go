package domain

import (
	"math"
	"testing"
)

func TestDistanceIsSymmetric(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 3, Y: 4},
		{X: -12.5, Y: 7.25},
		{X: 1e6, Y: -1e6},
	}

	for _, p := range points {
		for _, q := range points {
			if got, want := p.DistanceTo(q), q.DistanceTo(p); got != want {
				t.Errorf("distance(%v, %v) = %v, reverse = %v", p, q, got, want)
			}
			if p.DistanceTo(q) < 0 {
				t.Errorf("distance(%v, %v) is negative", p, q)
			}
		}
	}
}

func TestDistanceZeroOnlyForSamePoint(t *testing.T) {
	p := Point{X: 42, Y: -7}
	if d := p.DistanceTo(p); d != 0 {
		t.Fatalf("distance(p, p) = %v, want 0", d)
	}

	if d := p.DistanceTo(Point{X: 42, Y: -6.999}); d == 0 {
		t.Fatal("distance between distinct points must not be 0")
	}
}

func TestDistanceKnownValues(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Fatalf("Distance(0,0,3,4) = %v, want 5", d)
	}
	if d := Distance(100, 0, 100, 100); d != 100 {
		t.Fatalf("Distance(100,0,100,100) = %v, want 100", d)
	}
	if d := Distance(0, 0, 1, 1); math.Abs(d-math.Sqrt2) > 1e-12 {
		t.Fatalf("Distance(0,0,1,1) = %v, want sqrt(2)", d)
	}
}
