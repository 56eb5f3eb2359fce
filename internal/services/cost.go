package services

import "carexpress-dispatch/internal/domain"

// Delivery tariff: 50 per 100 distance units plus 25 per 10 weight units.
const (
	distanceTariffUnit  = 100.0
	distanceTariffPrice = 50.0
	weightTariffUnit    = 10.0
	weightTariffPrice   = 25.0
)

// CalculateCost applies the linear distance and weight tariffs.
// Results are not rounded and inputs are not validated.
func CalculateCost(totalDistance, weight float64) domain.Cost {
	distanceCost := (totalDistance / distanceTariffUnit) * distanceTariffPrice
	weightCost := (weight / weightTariffUnit) * weightTariffPrice

	return domain.Cost{
		DistanceCost: distanceCost,
		WeightCost:   weightCost,
		TotalCost:    distanceCost + weightCost,
	}
}
