package domain

// Tariff components of a delivery.
type Cost struct {
	DistanceCost float64
	WeightCost   float64
	TotalCost    float64
}

// Represents the pairing of an order with its nearest available vehicle.
// A RouteAssignment is derived planning data: it is never persisted and
// producing one has no side effects.
type RouteAssignment struct {
	Vehicle             Vehicle
	Order               Order
	OriginLocation      Location
	DestinationLocation Location
	DistanceToOrigin    float64
	DeliveryDistance    float64
	TotalDistance       float64
	Cost
}
