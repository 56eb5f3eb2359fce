package handlers

import (
	"net/http"

	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/ports"
)

// LocationHandler exposes location registration and edits.
type LocationHandler struct {
	Store ports.LocationCatalog
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	locs := h.Store.ListLocations()

	res := dto.ListLocationsResponse{Locations: make([]dto.LocationResponse, 0, len(locs))}
	for _, l := range locs {
		res.Locations = append(res.Locations, toLocationResponse(l))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	loc, err := h.Store.AddLocation(r.Context(), fromLocationRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toLocationResponse(loc))
}

func (h *LocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.LocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	loc, err := h.Store.UpdateLocation(r.Context(), r.PathValue("name"), fromLocationRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toLocationResponse(loc))
}

// Delete removes a location. Vehicles and orders that reference it are kept.
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteLocation(r.Context(), r.PathValue("name")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func fromLocationRequest(req dto.LocationRequest) domain.Location {
	return domain.Location{Name: req.Name, X: *req.X, Y: *req.Y}
}

func toLocationResponse(l domain.Location) dto.LocationResponse {
	return dto.LocationResponse{Name: l.Name, X: l.X, Y: l.Y}
}
