package dto

type SummaryResponse struct {
	Locations         int `json:"locations"`
	Vehicles          int `json:"vehicles"`
	Orders            int `json:"orders"`
	AvailableVehicles int `json:"available_vehicles"`
}

type RestoreResponse struct {
	Message string          `json:"message"`
	Summary SummaryResponse `json:"summary"`
}
