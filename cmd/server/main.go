package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"carexpress-dispatch/internal/adapters/backup"
	"carexpress-dispatch/internal/adapters/kv"
	"carexpress-dispatch/internal/api"
	"carexpress-dispatch/internal/config"
	"carexpress-dispatch/internal/events"
	"carexpress-dispatch/internal/platform/metrics"
	"carexpress-dispatch/internal/platform/obs"
	"carexpress-dispatch/internal/services"
	"carexpress-dispatch/internal/store"
)

// main is the application composition root.
// It wires the configured storage backend behind the entity store and starts the HTTP server.
func main() {
	log := obs.Logger
	if !config.LoadDotEnv() {
		log.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := obs.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal(err)
	}
	metrics.RegisterDefault()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	log := obs.Logger
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := kv.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	s := store.New(backend.Store)
	if err := s.Load(ctx); err != nil {
		return err
	}

	if cfg.SeedPath != "" {
		switch err := backup.SeedFromJSON(ctx, s, cfg.SeedPath); {
		case errors.Is(err, backup.ErrStoreNotEmpty):
			log.WithField("seed", cfg.SeedPath).Info("store already populated, seed skipped")
		case err != nil:
			return err
		default:
			log.WithField("seed", cfg.SeedPath).Info("store seeded")
		}
	}

	hub := events.NewHub()
	detach := hub.Attach(s)
	defer detach()

	session := services.NewRouteSession(services.NewDispatcher(s), s)
	router := api.NewRouter(api.Deps{Store: s, Session: session, Hub: hub})

	sum := s.Summary()
	log.WithFields(logrus.Fields{
		"addr":      cfg.Addr(),
		"storage":   cfg.Storage,
		"locations": sum.Locations,
		"vehicles":  sum.Vehicles,
		"orders":    sum.Orders,
	}).Info("Server listening")

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("graceful shutdown failed")
	}

	// Write the full snapshot back before exiting.
	if err := s.Save(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
