package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"carexpress-dispatch/internal/api/dto"
	"carexpress-dispatch/internal/domain"
	"carexpress-dispatch/internal/ports"
)

// OrderHandler exposes order registration and edits.
type OrderHandler struct {
	Store ports.OrderCatalog
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.ListOrders()

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderResponse, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.Store.AddOrder(r.Context(), fromOrderRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, toOrderResponse(o))
}

// Update replaces the fields of an order. The id never changes.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var req dto.OrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.Store.UpdateOrder(r.Context(), id, fromOrderRequest(req))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toOrderResponse(o))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	if err := h.Store.DeleteOrder(r.Context(), id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid order id %q", raw))
		return 0, false
	}
	return id, true
}

func fromOrderRequest(req dto.OrderRequest) domain.OrderInput {
	return domain.OrderInput{
		OriginLocation:      req.OriginLocation,
		DestinationLocation: req.DestinationLocation,
		Weight:              *req.Weight,
	}
}

func toOrderResponse(o domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                  o.ID,
		OriginLocation:      o.OriginLocation,
		DestinationLocation: o.DestinationLocation,
		Weight:              o.Weight,
	}
}
