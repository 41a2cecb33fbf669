package storage

import "context"

// Store is a synchronous, single-namespace key/value store.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value under key. It may fail with
	// ErrQuotaExceeded or ErrSecurity.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys enumerates every stored key.
	Keys(ctx context.Context) ([]string, error)
}
