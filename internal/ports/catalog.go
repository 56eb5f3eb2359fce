package ports

import (
	"context"

	"carexpress-dispatch/internal/domain"
)

// Port: location registration and edits.
type LocationCatalog interface {
	ListLocations() []domain.Location
	AddLocation(ctx context.Context, loc domain.Location) (domain.Location, error)
	UpdateLocation(ctx context.Context, name string, loc domain.Location) (domain.Location, error)
	DeleteLocation(ctx context.Context, name string) error
}

// Port: fleet registration and edits.
type VehicleCatalog interface {
	ListVehicles() []domain.Vehicle
	AddVehicle(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	ReplaceVehicle(ctx context.Context, plate string, v domain.Vehicle) (domain.Vehicle, error)
	VehicleUpdater
	DeleteVehicle(ctx context.Context, plate string) error
	GetVehicle(plate string) (domain.Vehicle, bool)
	GetLocation(name string) (domain.Location, bool)
}

// Port: order registration and edits.
type OrderCatalog interface {
	ListOrders() []domain.Order
	AddOrder(ctx context.Context, in domain.OrderInput) (domain.Order, error)
	UpdateOrder(ctx context.Context, id int, in domain.OrderInput) (domain.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

// Port: whole-store export and restore.
type Snapshotter interface {
	Backup() domain.Backup
	Restore(ctx context.Context, snap domain.RestoreSnapshot) error
	Summary() domain.Summary
}
