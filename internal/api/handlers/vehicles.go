package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/ports"
)

// VehicleHandler exposes fleet registration and edits.
type VehicleHandler struct {
	Store ports.VehicleCatalog
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles := h.Store.ListVehicles()

	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, toVehicleResponse(v))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.Store.AddVehicle(r.Context(), fromVehicleRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toVehicleResponse(v))
}

// Replace overwrites every field of a vehicle, plate included.
func (h *VehicleHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v, err := h.Store.ReplaceVehicle(r.Context(), r.PathValue("plate"), fromVehicleRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toVehicleResponse(v))
}

// Patch changes the status or current location of a vehicle.
func (h *VehicleHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req dto.VehiclePatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	plate := r.PathValue("plate")
	patch := domain.VehiclePatch{CurrentLocation: req.CurrentLocation}
	if req.CurrentLocation != nil {
		name := strings.TrimSpace(*req.CurrentLocation)
		if _, ok := h.Store.GetLocation(name); !ok {
			writeDomainError(w, r, fmt.Errorf("%w: current location %q", domain.ErrDanglingReference, name))
			return
		}
		patch.CurrentLocation = &name
	}
	if req.Status != nil {
		status := domain.VehicleStatus(*req.Status)
		patch.Status = &status
	}

	if err := h.Store.UpdateVehicle(r.Context(), plate, patch); err != nil {
		writeDomainError(w, r, err)
		return
	}

	v, ok := h.Store.GetVehicle(plate)
	if !ok {
		writeDomainError(w, r, domain.ErrVehicleNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, toVehicleResponse(v))
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteVehicle(r.Context(), r.PathValue("plate")); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func fromVehicleRequest(req dto.VehicleRequest) domain.Vehicle {
	return domain.Vehicle{
		Plate:           req.Plate,
		Model:           req.Model,
		Status:          domain.VehicleStatus(req.Status),
		CurrentLocation: req.CurrentLocation,
	}
}

func toVehicleResponse(v domain.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		Plate:           v.Plate,
		Model:           v.Model,
		Status:          string(v.Status),
		CurrentLocation: v.CurrentLocation,
	}
}
