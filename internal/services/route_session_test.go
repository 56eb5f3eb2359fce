package services

import (
	"context"
	"errors"
	"testing"

	"carexpress-dispatch/internal/domain"
)

type recordingNotifier struct {
	kinds []domain.ChangeKind
	keys  []string
}

func (n *recordingNotifier) Emit(kind domain.ChangeKind, key string) {
	n.kinds = append(n.kinds, kind)
	n.keys = append(n.keys, key)
}

func TestRouteSessionLifecycle(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()
	n := &recordingNotifier{}
	session := NewRouteSession(d, n)

	if session.State() != StateIdle {
		t.Fatalf("initial state = %q", session.State())
	}
	if _, err := session.Commit(ctx); !errors.Is(err, domain.ErrNoAssignment) {
		t.Fatalf("commit while idle: expected ErrNoAssignment, got %v", err)
	}

	a, err := session.Calculate(ctx, 1)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if session.State() != StateCalculated {
		t.Fatalf("state after calculate = %q", session.State())
	}
	if cur, ok := session.Current(); !ok || cur.Order.ID != a.Order.ID {
		t.Fatalf("current = %+v ok=%v", cur, ok)
	}

	committed, err := session.Commit(ctx)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if committed.Vehicle.Plate != "V1" {
		t.Fatalf("committed = %+v", committed)
	}
	if session.State() != StateIdle {
		t.Fatalf("state after commit = %q", session.State())
	}
	if len(n.kinds) != 1 || n.kinds[0] != domain.RouteCommitted || n.keys[0] != "1" {
		t.Fatalf("notifications = %v %v", n.kinds, n.keys)
	}

	v, _ := s.GetVehicle("V1")
	if v.CurrentLocation != "C" {
		t.Fatalf("vehicle location = %q, want C", v.CurrentLocation)
	}

	// Idle again: a second commit is refused.
	if _, err := session.Commit(ctx); !errors.Is(err, domain.ErrNoAssignment) {
		t.Fatalf("double commit: expected ErrNoAssignment, got %v", err)
	}
}

func TestRouteSessionFailedCalculationClears(t *testing.T) {
	_, d := newDispatchFixture(t)
	ctx := context.Background()
	session := NewRouteSession(d, nil)

	if _, err := session.Calculate(ctx, 1); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if _, err := session.Calculate(ctx, 42); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if session.State() != StateIdle {
		t.Fatalf("failed calculation must leave the session idle, got %q", session.State())
	}
}

func TestRouteSessionFailedCommitKeepsAssignment(t *testing.T) {
	s, d := newDispatchFixture(t)
	ctx := context.Background()
	session := NewRouteSession(d, nil)

	if _, err := session.Calculate(ctx, 1); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if err := s.DeleteVehicle(ctx, "V1"); err != nil {
		t.Fatalf("delete vehicle: %v", err)
	}

	if _, err := session.Commit(ctx); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if session.State() != StateCalculated {
		t.Fatalf("failed commit must keep the assignment, state = %q", session.State())
	}

	session.Clear()
	if _, ok := session.Current(); ok {
		t.Fatal("clear must discard the assignment")
	}
}
