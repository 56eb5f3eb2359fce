package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the key-value table. The statements are valid for both
// SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createKeyValueQuery := `
	CREATE TABLE IF NOT EXISTS kv_store (
		store_key TEXT PRIMARY KEY,
		store_value TEXT NOT NULL
	);
	`

	statements := []string{
		createKeyValueQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
