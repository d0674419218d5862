// Package kv is the persistence collaborator: an opaque key-value store with
// last-write-wins semantics, optional TTLs and no multi-key transactions.
// Production uses Redis; without a REDIS_URL the process falls back to an
// in-memory store that serves a single instance.
package kv

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set writes the value. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Incr atomically increments a counter, creating it with the given ttl
	// on first use. Used for fixed-window rate limiting.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
