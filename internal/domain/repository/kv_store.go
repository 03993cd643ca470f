// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"loyalty/internal/errors"
)

// ErrKeyNotFound is returned by a KeyValueStore when the key was never set or was removed.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the string key/value storage the ledger persists through.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
