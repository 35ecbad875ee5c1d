// Package storage provides the durable key/value layer the inventory store
// persists into. It defines the Backend interface and two implementations: a
// JSON file backend with cross-process locking, and an in-memory backend for
// tests and ephemeral use.
package storage

import (
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get and Remove when the key is absent.
var ErrKeyNotFound = errors.New("storage: key not found")

// Op describes one mutation inside a batch. When Remove is true the key is
// deleted and Value is ignored.
type Op struct {
	Key    string
	Value  []byte
	Remove bool
}

// Metadata describes the persisted file envelope.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Backend is the low-level interface for durable key/value persistence.
// Values are opaque byte slices; serialization is the caller's concern.
//
// Apply performs every operation in a single atomic write, so multi-key
// mutations cannot be observed half-done by another reader of the same file.
type Backend interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set writes the value under key, creating or replacing it.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing an absent key returns ErrKeyNotFound.
	Remove(key string) error

	// Keys returns every stored key with the given prefix, in an
	// unspecified order. An empty prefix matches all keys.
	Keys(prefix string) ([]string, error)

	// Apply performs the operations as one atomic batch.
	Apply(ops []Op) error

	// Close releases any resources held by the backend.
	Close() error
}
