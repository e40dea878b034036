// Package cache stores solved placements and rendered artifacts.
//
// Laying out a netlist is deterministic, so a placement can be reused for
// as long as the netlist text and the layout options are unchanged. Keys are
// content hashes built by a [Keyer]; values are opaque bytes (serialized
// [graph.Placement] or rendered output).
//
// # Backends
//
//   - [FileCache]: one file per entry under a directory (CLI default)
//   - [RedisCache]: shared cache backed by Redis
//   - [NullCache]: never stores anything (--no-cache)
//
// [graph.Placement]: github.com/matzehuels/schematic/pkg/graph#Placement
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	TTLPlacement = 7 * 24 * time.Hour
	TTLArtifact  = 7 * 24 * time.Hour
)

// Cache is a byte store with expiring entries. Implementations must be safe
// for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry does not expire.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
