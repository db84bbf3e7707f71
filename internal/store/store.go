// Package store persists app state as string key-value entries. The
// reveal state machine, history log, and notification settings all write
// through the Store port; production uses the atomic JSON file store and
// tests use the in-memory one.
package store

// Store is a string key-value persistence port.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes the value for key, creating or replacing it.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the underlying resource.
	Close() error
}
