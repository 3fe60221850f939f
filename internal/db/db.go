// Package db defines the storage facade the listing engine reads through.
// The engine holds no write access to entities; JSONSet exists for the
// seeding tool only.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
// Consumers use narrow sub-interfaces (ISP).
type Store interface {
	Pinger
	JSONStore
	Scanner
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONStore provides RedisJSON document operations.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Del(ctx context.Context, key string) error
}

// Scanner iterates keys by pattern.
type Scanner interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
}
