package services

import (
	"math"
	"testing"

	"carexpress-dispatch/internal/domain"
)

func TestCalculateCost(t *testing.T) {
	cases := []struct {
		distance, weight float64
		want             domain.Cost
	}{
		{0, 0, domain.Cost{DistanceCost: 0, WeightCost: 0, TotalCost: 0}},
		{100, 10, domain.Cost{DistanceCost: 50, WeightCost: 25, TotalCost: 75}},
		{200, 20, domain.Cost{DistanceCost: 100, WeightCost: 50, TotalCost: 150}},
	}

	for _, c := range cases {
		if got := CalculateCost(c.distance, c.weight); got != c.want {
			t.Errorf("CalculateCost(%v, %v) = %+v, want %+v", c.distance, c.weight, got, c.want)
		}
	}
}

func TestCalculateCostIsNotRounded(t *testing.T) {
	got := CalculateCost(33.333, 1)

	if math.Abs(got.DistanceCost-16.6665) > 1e-9 {
		t.Fatalf("distance cost = %v, want 16.6665", got.DistanceCost)
	}
	if math.Abs(got.WeightCost-2.5) > 1e-9 {
		t.Fatalf("weight cost = %v, want 2.5", got.WeightCost)
	}
	if got.TotalCost != got.DistanceCost+got.WeightCost {
		t.Fatalf("total cost = %v, want the sum of both parts", got.TotalCost)
	}
}
