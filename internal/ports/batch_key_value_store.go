package ports

import "context"

// Optional extension of KeyValueStore that writes several keys atomically.
type BatchKeyValueStore interface {
	KeyValueStore
	// Store all entries or none of them.
	SetMany(ctx context.Context, entries map[string][]byte) error
}
