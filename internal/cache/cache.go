// Package cache defines the response cache shared across requests. Entries
// are final serialized answer payloads keyed by the normalized question and
// are immutable once written; a duplicate write is last-write-wins.
package cache

import "context"

// Store is a get/put key-value store. Implementations must tolerate
// concurrent reads and writes; no read-modify-write is ever performed on
// them.
type Store interface {
	// Get returns the cached payload for a key. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a payload under a key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
