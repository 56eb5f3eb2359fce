package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carexpress-dispatch/internal/config"
	"carexpress-dispatch/internal/platform/db"
	"carexpress-dispatch/internal/ports"
)

// Backend is an opened key-value store and the release of its resources.
type Backend struct {
	Store ports.BatchKeyValueStore
	Close func() error
}

// Open connects the backend selected by cfg.Storage. SQL backends get their
// schema created when missing.
func Open(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := ensureDir(cfg.DBPath); err != nil {
			return Backend{}, err
		}
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return Backend{}, err
		}
		if err := InitSchema(ctx, conn); err != nil {
			conn.Close()
			return Backend{}, err
		}
		return Backend{Store: NewSqliteKeyValueStore(conn), Close: conn.Close}, nil

	case config.StoragePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return Backend{}, err
		}
		if err := InitSchema(ctx, conn); err != nil {
			conn.Close()
			return Backend{}, err
		}
		return Backend{Store: NewSQLKeyValueStore(conn), Close: conn.Close}, nil

	case config.StorageRedis:
		s, err := NewRedisKeyValueStore(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return Backend{}, err
		}
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return Backend{}, err
		}
		return Backend{Store: s, Close: s.Close}, nil

	case config.StorageMemory:
		return Backend{Store: NewMemoryKeyValueStore(), Close: func() error { return nil }}, nil
	}

	return Backend{}, fmt.Errorf("open storage: unknown backend %q", cfg.Storage)
}

func ensureDir(dbPath string) error {
	if dbPath == ":memory:" || strings.HasPrefix(dbPath, "file:") {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("open storage: create %q: %w", dir, err)
	}
	return nil
}
