package store

import (
	"context"
	"fmt"
	"strconv"

	"carexpress-dispatch/internal/domain"
)

func (s *EntityStore) checkOrderLocations(in domain.OrderInput) error {
	if !s.hasLocation(in.OriginLocation) {
		return fmt.Errorf("%w: origin location %q", domain.ErrDanglingReference, in.OriginLocation)
	}
	if !s.hasLocation(in.DestinationLocation) {
		return fmt.Errorf("%w: destination location %q", domain.ErrDanglingReference, in.DestinationLocation)
	}
	return nil
}

// AddOrder creates an order with the next id from the counter. The orders
// and the advanced counter are persisted together.
func (s *EntityStore) AddOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error) {
	in, err := in.Normalize()
	if err != nil {
		return domain.Order{}, err
	}

	var created domain.Order
	err = s.mutate(domain.OrderCreated, func() (string, error) {
		if err := s.checkOrderLocations(in); err != nil {
			return "", err
		}

		order := in.WithID(s.nextOrderID)
		next := appended(s.orders, order)
		nextID := s.nextOrderID + 1

		err := s.persist(ctx, "orders", map[string]any{
			KeyOrders:      next,
			KeyNextOrderID: nextID,
		})
		if err != nil {
			return "", fmt.Errorf("add order: %w", err)
		}
		s.orders = next
		s.nextOrderID = nextID
		created = order
		return strconv.Itoa(order.ID), nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

// UpdateOrder replaces the fields of an order, keeping its id.
func (s *EntityStore) UpdateOrder(ctx context.Context, id int, in domain.OrderInput) (domain.Order, error) {
	in, err := in.Normalize()
	if err != nil {
		return domain.Order{}, err
	}

	order := in.WithID(id)
	err = s.mutate(domain.OrderUpdated, func() (string, error) {
		i := s.orderIndex(id)
		if i < 0 {
			return "", fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, id)
		}
		if err := s.checkOrderLocations(in); err != nil {
			return "", err
		}

		next := replaced(s.orders, i, order)
		if err := s.persist(ctx, "orders", map[string]any{KeyOrders: next}); err != nil {
			return "", fmt.Errorf("update order: %w", err)
		}
		s.orders = next
		return strconv.Itoa(id), nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

// DeleteOrder removes an order. Its id is not handed out again.
func (s *EntityStore) DeleteOrder(ctx context.Context, id int) error {
	return s.mutate(domain.OrderDeleted, func() (string, error) {
		i := s.orderIndex(id)
		if i < 0 {
			return "", fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, id)
		}

		next := without(s.orders, i)
		if err := s.persist(ctx, "orders", map[string]any{KeyOrders: next}); err != nil {
			return "", fmt.Errorf("delete order: %w", err)
		}
		s.orders = next
		return strconv.Itoa(id), nil
	})
}
