package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/platform/metrics"
	"carexpress-dispatch/internal/platform/obs"
	"carexpress-dispatch/internal/ports"
)

// Dispatcher pairs orders with the nearest available vehicle.
// It only reads the entity store, except for the single vehicle update
// issued by Commit.
type Dispatcher struct {
	Store ports.EntityStore
}

func NewDispatcher(store ports.EntityStore) *Dispatcher {
	return &Dispatcher{Store: store}
}

// Calculate builds the route assignment for an order. It mutates nothing and
// may be repeated freely.
func (d *Dispatcher) Calculate(ctx context.Context, orderID int) (_ *domain.RouteAssignment, err error) {
	defer obs.Time(ctx, "dispatch.Calculate")(&err)
	defer func() { metrics.RouteCalculations.WithLabelValues(outcome(err)).Inc() }()

	orders := d.Store.ListOrders()
	i := slices.IndexFunc(orders, func(o domain.Order) bool { return o.ID == orderID })
	if i < 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrOrderNotFound, orderID)
	}
	order := orders[i]

	// Locations may have been deleted after the order was created.
	locations := d.Store.ListLocations()
	origin, ok := domain.FindLocation(locations, order.OriginLocation)
	if !ok {
		return nil, fmt.Errorf("%w: origin %q of order %d", domain.ErrLocationMissing, order.OriginLocation, order.ID)
	}
	destination, ok := domain.FindLocation(locations, order.DestinationLocation)
	if !ok {
		return nil, fmt.Errorf("%w: destination %q of order %d", domain.ErrLocationMissing, order.DestinationLocation, order.ID)
	}

	nearest, ok := FindNearestAvailable(d.Store.ListVehicles(), locations, origin)
	if !ok {
		return nil, fmt.Errorf("%w: every vehicle is busy or none is registered at a known location", domain.ErrNoVehicleAvailable)
	}

	deliveryDistance := origin.Point().DistanceTo(destination.Point())
	totalDistance := nearest.Distance + deliveryDistance

	return &domain.RouteAssignment{
		Vehicle:             nearest.Vehicle,
		Order:               order,
		OriginLocation:      origin,
		DestinationLocation: destination,
		DistanceToOrigin:    nearest.Distance,
		DeliveryDistance:    deliveryDistance,
		TotalDistance:       totalDistance,
		Cost:                CalculateCost(totalDistance, order.Weight),
	}, nil
}

// Commit applies a calculated assignment: the assigned vehicle becomes
// available at the order destination. The vehicle is looked up again by
// plate, so an assignment whose vehicle was deleted fails without mutation.
func (d *Dispatcher) Commit(ctx context.Context, a *domain.RouteAssignment) (err error) {
	defer obs.Time(ctx, "dispatch.Commit")(&err)
	defer func() { metrics.RouteCommits.WithLabelValues(outcome(err)).Inc() }()

	if a == nil {
		return domain.ErrNoAssignment
	}

	plate := a.Vehicle.Plate
	if !slices.ContainsFunc(d.Store.ListVehicles(), func(v domain.Vehicle) bool { return v.Plate == plate }) {
		return fmt.Errorf("%w: plate %q", domain.ErrVehicleNotFound, plate)
	}

	status := domain.StatusAvailable
	location := a.DestinationLocation.Name
	patch := domain.VehiclePatch{Status: &status, CurrentLocation: &location}

	if err := d.Store.UpdateVehicle(ctx, plate, patch); err != nil {
		return fmt.Errorf("commit route: %w", err)
	}

	return nil
}

// Metric label for a dispatch outcome.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, domain.ErrLocationMissing):
		return "location_missing"
	case errors.Is(err, domain.ErrNoVehicleAvailable):
		return "no_vehicle"
	case errors.Is(err, domain.ErrVehicleNotFound):
		return "vehicle_not_found"
	case errors.Is(err, domain.ErrNoAssignment):
		return "no_assignment"
	}
	return "error"
}
