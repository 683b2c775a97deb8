// Package cache stores rendered puzzle artifacts keyed by a hash of their
// generation parameters. Rendering is deterministic for a given seed, so a
// cached artifact never goes stale; TTLs exist only to bound storage.
//
// Three backends implement the same interface: a file cache for CLI use, a
// Redis cache for the shared preview server, and a null cache that disables
// caching entirely.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/puzzletools/puzzgen/pkg/puzzle"
)

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the storage interface for rendered artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from generation parameters.
type Keyer interface {
	// RenderKey identifies one rendered artifact: the full generation
	// parameters plus the output format.
	RenderKey(params puzzle.Params, format string) string
}

// DefaultKeyer hashes parameters into namespaced SHA-256 keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(params puzzle.Params, format string) string {
	return hashKey("render", params, format)
}
