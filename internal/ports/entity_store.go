package ports

import (
	"context"

	"carexpress-dispatch/internal/domain"
)

// Port: read access to the current entity snapshot, in insertion order.
type EntityReader interface {
	ListLocations() []domain.Location
	ListVehicles() []domain.Vehicle
	ListOrders() []domain.Order
}

// Port: the single mutation route assignment is allowed to request.
type VehicleUpdater interface {
	// Apply patch to the vehicle with the given plate. Returns
	// domain.ErrVehicleNotFound when no such vehicle exists.
	UpdateVehicle(ctx context.Context, plate string, patch domain.VehiclePatch) error
}

// Port: the entity store as seen by the dispatcher.
type EntityStore interface {
	EntityReader
	VehicleUpdater
}
