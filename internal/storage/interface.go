package storage

import (
	"context"
	"errors"
)

// Storage errors
var (
	// ErrNotFound is returned by Get when nothing is stored under the key
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt is returned when a stored record cannot be decoded
	ErrCorrupt = errors.New("stored record is corrupt")
)

// Store is a persistent, string-keyed key-value store. It stands in for the
// browser-origin storage the portal was designed around: values are opaque
// strings, there is no expiry, and an unseen namespace starts empty.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
