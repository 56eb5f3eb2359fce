package dto

type OrderRequest struct {
	OriginLocation      string   `json:"origin_location" validate:"required"`
	DestinationLocation string   `json:"destination_location" validate:"required"`
	Weight              *float64 `json:"weight" validate:"required,gte=0"`
}

type OrderResponse struct {
	ID                  int     `json:"id"`
	OriginLocation      string  `json:"origin_location"`
	DestinationLocation string  `json:"destination_location"`
	Weight              float64 `json:"weight"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
