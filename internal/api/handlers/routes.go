package handlers

import (
	"fmt"
	"net/http"

	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/services"
)

// RouteHandler drives the calculate / commit cycle of a route session.
type RouteHandler struct {
	Session *services.RouteSession
}

func (h *RouteHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.Session.Calculate(r.Context(), req.OrderID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toRouteResponse(a))
}

func (h *RouteHandler) Current(w http.ResponseWriter, r *http.Request) {
	res := dto.CurrentRouteResponse{State: string(services.StateIdle)}
	if a, ok := h.Session.Current(); ok {
		route := toRouteResponse(a)
		res.State = string(services.StateCalculated)
		res.Route = &route
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.Session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// Commit executes the delivery of the pending assignment.
func (h *RouteHandler) Commit(w http.ResponseWriter, r *http.Request) {
	a, err := h.Session.Commit(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.CommitRouteResponse{
		Message: fmt.Sprintf("delivery completed: vehicle %s is now at %s", a.Vehicle.Plate, a.DestinationLocation.Name),
		Route:   toRouteResponse(a),
	}
	writeJSON(w, r, http.StatusOK, res)
}

func toRouteResponse(a domain.RouteAssignment) dto.RouteResponse {
	return dto.RouteResponse{
		Vehicle:             toVehicleResponse(a.Vehicle),
		Order:               toOrderResponse(a.Order),
		OriginLocation:      toLocationResponse(a.OriginLocation),
		DestinationLocation: toLocationResponse(a.DestinationLocation),
		DistanceToOrigin:    a.DistanceToOrigin,
		DeliveryDistance:    a.DeliveryDistance,
		TotalDistance:       a.TotalDistance,
		DistanceCost:        a.DistanceCost,
		WeightCost:          a.WeightCost,
		TotalCost:           a.TotalCost,
		Display: dto.RouteDisplay{
			DistanceToOrigin: round2(a.DistanceToOrigin),
			DeliveryDistance: round2(a.DeliveryDistance),
			TotalDistance:    round2(a.TotalDistance),
			DistanceCost:     round2(a.DistanceCost),
			WeightCost:       round2(a.WeightCost),
			TotalCost:        round2(a.TotalCost),
		},
	}
}
