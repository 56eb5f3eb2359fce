package dto

type CalculateRouteRequest struct {
	OrderID int `json:"order_id" validate:"required,gt=0"`
}

// Figures of a route rounded to two decimals for display.
type RouteDisplay struct {
	DistanceToOrigin string `json:"distance_to_origin"`
	DeliveryDistance string `json:"delivery_distance"`
	TotalDistance    string `json:"total_distance"`
	DistanceCost     string `json:"distance_cost"`
	WeightCost       string `json:"weight_cost"`
	TotalCost        string `json:"total_cost"`
}

type RouteResponse struct {
	Vehicle             VehicleResponse  `json:"vehicle"`
	Order               OrderResponse    `json:"order"`
	OriginLocation      LocationResponse `json:"origin_location"`
	DestinationLocation LocationResponse `json:"destination_location"`
	DistanceToOrigin    float64          `json:"distance_to_origin"`
	DeliveryDistance    float64          `json:"delivery_distance"`
	TotalDistance       float64          `json:"total_distance"`
	DistanceCost        float64          `json:"distance_cost"`
	WeightCost          float64          `json:"weight_cost"`
	TotalCost           float64          `json:"total_cost"`
	Display             RouteDisplay     `json:"display"`
}

type CurrentRouteResponse struct {
	State string         `json:"state"`
	Route *RouteResponse `json:"route"`
}

type CommitRouteResponse struct {
	Message string        `json:"message"`
	Route   RouteResponse `json:"route"`
}
