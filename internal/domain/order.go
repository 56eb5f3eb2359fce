package domain

import (
	"fmt"
	"strings"
)

// Represents a delivery request between two registered locations.
// ID is assigned by the entity store and never reused.
type Order struct {
	ID                  int     `json:"id"`
	OriginLocation      string  `json:"originLocation"`
	DestinationLocation string  `json:"destinationLocation"`
	Weight              float64 `json:"weight"`
}

// Caller-supplied order fields.
type OrderInput struct {
	OriginLocation      string
	DestinationLocation string
	Weight              float64
}

// Normalize trims the location references and validates the weight.
func (in OrderInput) Normalize() (OrderInput, error) {
	in.OriginLocation = strings.TrimSpace(in.OriginLocation)
	in.DestinationLocation = strings.TrimSpace(in.DestinationLocation)

	if in.OriginLocation == "" {
		return OrderInput{}, fmt.Errorf("%w: order origin location must not be empty", ErrInvalidInput)
	}
	if in.DestinationLocation == "" {
		return OrderInput{}, fmt.Errorf("%w: order destination location must not be empty", ErrInvalidInput)
	}
	if !finite(in.Weight) || in.Weight < 0 {
		return OrderInput{}, fmt.Errorf("%w: order weight must be a non-negative number, got %v", ErrInvalidInput, in.Weight)
	}
	return in, nil
}

// Build an order with the given id.
func (in OrderInput) WithID(id int) Order {
	return Order{
		ID:                  id,
		OriginLocation:      in.OriginLocation,
		DestinationLocation: in.DestinationLocation,
		Weight:              in.Weight,
	}
}

// Return the editable fields of the order.
func (o Order) Input() OrderInput {
	return OrderInput{
		OriginLocation:      o.OriginLocation,
		DestinationLocation: o.DestinationLocation,
		Weight:              o.Weight,
	}
}
