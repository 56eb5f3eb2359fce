package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite-backed implementation of the KeyValueStore port.
type SqliteKeyValueStore struct {
	DB *sql.DB
}

func NewSqliteKeyValueStore(db *sql.DB) *SqliteKeyValueStore {
	return &SqliteKeyValueStore{DB: db}
}

// Fetch the value stored under key.
func (s *SqliteKeyValueStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.DB == nil {
		return nil, false, errors.New("sqlite kv store: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get kv: key must not be empty")
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `
	SELECT store_value
	FROM kv_store
	WHERE store_key = ?;
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get kv key=%q: query kv_store table: %w", key, err)
	}

	return []byte(value), true, nil
}

// Store a single value.
func (s *SqliteKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

// Store many values in one transaction.
func (s *SqliteKeyValueStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if s.DB == nil {
		return errors.New("sqlite kv store: db is nil")
	}

	if len(entries) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set kv: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO kv_store (
		store_key,
		store_value
	)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("set kv: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, value := range entries {
		if strings.TrimSpace(key) == "" {
			return errors.New("set kv: empty key")
		}

		if _, err := stmt.ExecContext(ctx, key, string(value)); err != nil {
			return fmt.Errorf("set kv key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("set kv commit: %w", err)
	}

	return nil
}
