package dto

type VehicleRequest struct {
	Plate           string `json:"plate" validate:"required,max=20"`
	Model           string `json:"model" validate:"required,max=120"`
	Status          string `json:"status" validate:"required,oneof=available busy"`
	CurrentLocation string `json:"current_location" validate:"required"`
}

// Partial vehicle update; omitted fields are left as they are.
type VehiclePatchRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=available busy"`
	CurrentLocation *string `json:"current_location" validate:"omitempty,min=1"`
}

type VehicleResponse struct {
	Plate           string `json:"plate"`
	Model           string `json:"model"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
