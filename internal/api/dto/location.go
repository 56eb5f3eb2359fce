package dto

type LocationRequest struct {
	Name string   `json:"name" validate:"required,max=120"`
	X    *float64 `json:"x" validate:"required"`
	Y    *float64 `json:"y" validate:"required"`
}

type LocationResponse struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
