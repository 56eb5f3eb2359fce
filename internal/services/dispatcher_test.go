package services

import (
	"context"
	"errors"
	"testing"

	"carexpress-dispatch/internal/adapters/kv"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/store"
)

// Fleet used across dispatch tests:
//
//	A(0,0)   B(100,0)   C(100,100)
//	V1 available at A, order 1 from B to C weighing 20.
func newDispatchFixture(t *testing.T) (*store.EntityStore, *Dispatcher) {
	t.Helper()
	ctx := context.Background()

	s := store.New(kv.NewMemoryKeyValueStore())
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, loc := range []domain.Location{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 100, Y: 0},
		{Name: "C", X: 100, Y: 100},
	} {
		if _, err := s.AddLocation(ctx, loc); err != nil {
			t.Fatalf("add location %q: %v", loc.Name, err)
		}
	}
	v := domain.Vehicle{Plate: "V1", Model: "Van", Status: domain.StatusAvailable, CurrentLocation: "A"}
	if _, err := s.AddVehicle(ctx, v); err != nil {
		t.Fatalf("add vehicle: %v", err)
	}
	in := domain.OrderInput{OriginLocation: "B", DestinationLocation: "C", Weight: 20}
	if _, err := s.AddOrder(ctx, in); err != nil {
		t.Fatalf("add order: %v", err)
	}
	return s, NewDispatcher(s)
}

func TestCalculateAssignsNearestVehicle(t *testing.T) {
	_, d := newDispatchFixture(t)

	a, err := d.Calculate(context.Background(), 1)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if a.Vehicle.Plate != "V1" {
		t.Fatalf("vehicle = %q, want V1", a.Vehicle.Plate)
	}
	if a.DistanceToOrigin != 100 || a.DeliveryDistance != 100 || a.TotalDistance != 200 {
		t.Fatalf("distances = %v/%v/%v, want 100/100/200", a.DistanceToOrigin, a.DeliveryDistance, a.TotalDistance)
	}
	want := domain.Cost{DistanceCost: 100, WeightCost: 50, TotalCost: 150}
	if a.Cost != want {
		t.Fatalf("cost = %+v, want %+v", a.Cost, want)
	}
	if a.OriginLocation.Name != "B" || a.DestinationLocation.Name != "C" {
		t.Fatalf("resolved locations = %q -> %q", a.OriginLocation.Name, a.DestinationLocation.Name)
	}
}

func TestCalculateDoesNotMutate(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := d.Calculate(ctx, 1); err != nil {
			t.Fatalf("calculate #%d: %v", i, err)
		}
	}

	v, _ := s.GetVehicle("V1")
	if v.CurrentLocation != "A" || v.Status != domain.StatusAvailable {
		t.Fatalf("vehicle changed by calculation: %+v", v)
	}
}

func TestCalculateErrors(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()

	if _, err := d.Calculate(ctx, 99); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("unknown order: expected ErrOrderNotFound, got %v", err)
	}

	status := domain.StatusBusy
	if err := s.UpdateVehicle(ctx, "V1", domain.VehiclePatch{Status: &status}); err != nil {
		t.Fatalf("mark busy: %v", err)
	}
	if _, err := d.Calculate(ctx, 1); !errors.Is(err, domain.ErrNoVehicleAvailable) {
		t.Fatalf("busy fleet: expected ErrNoVehicleAvailable, got %v", err)
	}

	if err := s.DeleteLocation(ctx, "C"); err != nil {
		t.Fatalf("delete location: %v", err)
	}
	if _, err := d.Calculate(ctx, 1); !errors.Is(err, domain.ErrLocationMissing) {
		t.Fatalf("deleted destination: expected ErrLocationMissing, got %v", err)
	}
}

func TestCommitMovesVehicleToDestination(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()

	a, err := d.Calculate(ctx, 1)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if err := d.Commit(ctx, a); err != nil {
		t.Fatalf("commit: %v", err)
	}

	v, _ := s.GetVehicle("V1")
	if v.CurrentLocation != "C" || v.Status != domain.StatusAvailable {
		t.Fatalf("vehicle after commit = %+v, want available at C", v)
	}
	if _, ok := s.GetOrder(1); !ok {
		t.Fatal("commit must not delete the order")
	}

	// Committing the same assignment again changes nothing.
	var changes int
	cancel := s.Subscribe(func(domain.Change) { changes++ })
	defer cancel()
	if err := d.Commit(ctx, a); err != nil {
		t.Fatalf("second commit: %v", err)
	}
	if changes != 0 {
		t.Fatalf("second commit emitted %d changes", changes)
	}
}

func TestCommitAfterVehicleDeleted(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()

	a, err := d.Calculate(ctx, 1)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if err := s.DeleteVehicle(ctx, "V1"); err != nil {
		t.Fatalf("delete vehicle: %v", err)
	}

	if err := d.Commit(ctx, a); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if n := len(s.ListVehicles()); n != 0 {
		t.Fatalf("commit recreated the vehicle: %d vehicles", n)
	}
}

func TestCommitNilAssignment(t *testing.T) {
	_, d := newDispatchFixture(t)
	if err := d.Commit(context.Background(), nil); !errors.Is(err, domain.ErrNoAssignment) {
		t.Fatalf("expected ErrNoAssignment, got %v", err)
	}
}
