package services

import (
	"context"
	"strconv"
	"sync"

	"carexpress-dispatch/internal/domain"
)

type RouteState string

const (
	// No assignment is held.
	StateIdle RouteState = "idle"
	// An assignment was calculated and awaits commit.
	StateCalculated RouteState = "calculated"
)

// Notifier receives the change emitted after a successful commit.
type Notifier interface {
	Emit(kind domain.ChangeKind, key string)
}

// RouteSession holds the assignment of one logical user session.
//
// A new calculation replaces the previous assignment and a failed
// calculation leaves the session idle. A successful commit discards the
// assignment; a failed one keeps it.
type RouteSession struct {
	dispatcher *Dispatcher
	notifier   Notifier

	mu      sync.Mutex
	current *domain.RouteAssignment
}

// NewRouteSession creates an idle session. notifier may be nil.
func NewRouteSession(d *Dispatcher, notifier Notifier) *RouteSession {
	return &RouteSession{dispatcher: d, notifier: notifier}
}

// Calculate computes the assignment for orderID and makes it current.
func (s *RouteSession) Calculate(ctx context.Context, orderID int) (domain.RouteAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	a, err := s.dispatcher.Calculate(ctx, orderID)
	if err != nil {
		return domain.RouteAssignment{}, err
	}
	s.current = a
	return *a, nil
}

// Current returns the pending assignment, if any.
func (s *RouteSession) Current() (domain.RouteAssignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.RouteAssignment{}, false
	}
	return *s.current, true
}

func (s *RouteSession) State() RouteState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return StateIdle
	}
	return StateCalculated
}

// Clear discards the pending assignment.
func (s *RouteSession) Clear() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Commit applies the pending assignment and returns it.
func (s *RouteSession) Commit(ctx context.Context) (domain.RouteAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.RouteAssignment{}, domain.ErrNoAssignment
	}

	committed := *s.current
	if err := s.dispatcher.Commit(ctx, s.current); err != nil {
		return domain.RouteAssignment{}, err
	}
	s.current = nil

	if s.notifier != nil {
		s.notifier.Emit(domain.RouteCommitted, strconv.Itoa(committed.Order.ID))
	}
	return committed, nil
}
