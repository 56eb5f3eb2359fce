package handlers

import (
	"net/http"

	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/ports"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

// SummaryHandler serves the dashboard counters.
type SummaryHandler struct {
	Store ports.Snapshotter
}

func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, toSummaryResponse(h.Store))
}

func toSummaryResponse(s ports.Snapshotter) dto.SummaryResponse {
	sum := s.Summary()
	return dto.SummaryResponse{
		Locations:         sum.Locations,
		Vehicles:          sum.Vehicles,
		Orders:            sum.Orders,
		AvailableVehicles: sum.AvailableVehicles,
	}
}
