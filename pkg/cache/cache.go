// Package cache stores rendered layouts so that identical requests skip
// Graphviz.
//
// # Backends
//
// [Cache] has three implementations:
//
//   - [FileCache]: one JSON file per entry below a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP service deployments)
//   - [NullCache]: stores nothing (--no-cache)
//
// [Observed] wraps any backend and reports hits, misses and failures to the
// hooks of package observability.
//
// # Keys
//
// Keys are built by a [Keyer] from the SHA-256 of the DOT source and the
// layout options, so any change to the graph or the requested output yields a
// new entry. [NewScopedKeyer] prefixes keys to keep several tenants apart in
// one Redis database.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(cache.Hash([]byte(src)), cache.LayoutKeyOpts{Engine: "dot", Format: "svg"})
//	data, ok, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
//
// Get reports a miss with ok == false and a nil error; an error means the
// backend itself failed. A zero ttl passed to Set stores the entry without
// expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
