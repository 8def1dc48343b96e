// Package kv provides the key-value storage abstraction the engine persists
// through. The engine never touches a concrete backend directly: production
// uses the SQLite-backed store, tests use the in-memory one.
package kv

// Store is a minimal string key-value store.
//
// Get returns ("", false, nil) for a missing key; an error is reserved for
// backend failures (I/O, corruption), never for absence.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}
