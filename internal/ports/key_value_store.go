package ports

import "context"

// Contract for the flat key-value storage behind the entity store.
// Values are opaque JSON documents.
type KeyValueStore interface {
	// Return the value stored under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Store value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
