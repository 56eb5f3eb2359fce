package domain

// Counters shown on the dashboard.
type Summary struct {
	Locations         int `json:"locations"`
	Vehicles          int `json:"vehicles"`
	Orders            int `json:"orders"`
	AvailableVehicles int `json:"availableVehicles"`
}
