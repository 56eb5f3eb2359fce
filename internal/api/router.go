package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carexpress-dispatch/internal/api/handlers"
	"carexpress-dispatch/internal/events"
	"carexpress-dispatch/internal/platform/metrics"
	"carexpress-dispatch/internal/services"
	"carexpress-dispatch/internal/store"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Store   *store.EntityStore
	Session *services.RouteSession
	Hub     *events.Hub
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	summary := &handlers.SummaryHandler{Store: d.Store}
	locations := &handlers.LocationHandler{Store: d.Store}
	vehicles := &handlers.VehicleHandler{Store: d.Store}
	orders := &handlers.OrderHandler{Store: d.Store}
	routes := &handlers.RouteHandler{Session: d.Session}
	backups := &handlers.BackupHandler{Store: d.Store}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /summary", summary.Get)

	mux.HandleFunc("GET /locations", locations.List)
	mux.HandleFunc("POST /locations", locations.Create)
	mux.HandleFunc("PUT /locations/{name}", locations.Update)
	mux.HandleFunc("DELETE /locations/{name}", locations.Delete)

	mux.HandleFunc("GET /vehicles", vehicles.List)
	mux.HandleFunc("POST /vehicles", vehicles.Create)
	mux.HandleFunc("PUT /vehicles/{plate}", vehicles.Replace)
	mux.HandleFunc("PATCH /vehicles/{plate}", vehicles.Patch)
	mux.HandleFunc("DELETE /vehicles/{plate}", vehicles.Delete)

	mux.HandleFunc("GET /orders", orders.List)
	mux.HandleFunc("POST /orders", orders.Create)
	mux.HandleFunc("PUT /orders/{id}", orders.Update)
	mux.HandleFunc("DELETE /orders/{id}", orders.Delete)

	mux.HandleFunc("POST /routes/calculate", routes.Calculate)
	mux.HandleFunc("GET /routes/current", routes.Current)
	mux.HandleFunc("DELETE /routes/current", routes.Clear)
	mux.HandleFunc("POST /routes/commit", routes.Commit)

	mux.HandleFunc("GET /backup", backups.Download)
	mux.HandleFunc("POST /restore", backups.Restore)

	if d.Hub != nil {
		mux.HandleFunc("GET /events", d.Hub.ServeWS)
	}

	return requestIDMiddleware(loggingMiddleware(mux))
}
