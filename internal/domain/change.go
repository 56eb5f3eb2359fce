package domain

import "time"

type ChangeKind string

const (
	LocationCreated ChangeKind = "location.created"
	LocationUpdated ChangeKind = "location.updated"
	LocationDeleted ChangeKind = "location.deleted"
	VehicleCreated  ChangeKind = "vehicle.created"
	VehicleUpdated  ChangeKind = "vehicle.updated"
	VehicleDeleted  ChangeKind = "vehicle.deleted"
	OrderCreated    ChangeKind = "order.created"
	OrderUpdated    ChangeKind = "order.updated"
	OrderDeleted    ChangeKind = "order.deleted"
	StoreRestored   ChangeKind = "store.restored"
	RouteCommitted  ChangeKind = "route.committed"
)

// Describes one successful write to the entity store.
// Key is the affected primary key (name, plate or order id) when there is one.
type Change struct {
	Kind ChangeKind `json:"kind"`
	Key  string     `json:"key,omitempty"`
	At   time.Time  `json:"at"`
}
