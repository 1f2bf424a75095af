// Package localstore is the client-side analogue of the browser's
// localStorage: durable key-value blobs on the user's machine, keyed by
// strings derived from the signed-in user's email. Values are opaque JSON;
// every save overwrites the whole value.
package localstore

// Store persists raw values under string keys.
type Store interface {
	// Load returns the value for key and whether it was present. Absence
	// is a normal state, not an error; callers supply their own defaults.
	Load(key string) ([]byte, bool, error)

	// Save overwrites the whole value for key.
	Save(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
}
