// Package storage provides abstractions for durable key-value storage.
package storage

import (
	"context"
)

// Well-known keys.
const (
	// StateKey holds the JSON snapshot of every collection.
	StateKey = "splitbeam.mock-state.v1"

	// LastSeenKey holds the activity "last viewed" timestamp.
	LastSeenKey = "splitbeam.activity.lastViewed"
)

// KV defines the interface for the durable key-value store the snapshot is
// mirrored to. This abstraction allows swapping backends (memory, SQLite,
// Redis) without changing the state layer.
//
// A nil KV is valid wherever a KV is accepted and means "no durable storage":
// reads find nothing and writes are dropped.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the store.
	Close() error
}
