// Package storage provides the durable key/value port the forum state is
// mirrored to, together with its adapters. Each logical key holds one JSON
// document; a missing key is not an error, and adapters treat a malformed
// document as absent so callers can fall back to their defaults.
package storage

// Logical store keys. The names are part of the stored-data contract shared
// with earlier versions of the portal and must not change.
const (
	KeyCurrentUser = "currentUser"
	KeyAllUsers    = "allUsers"
	KeyPosts       = "forumPosts"
	KeyCategories  = "forumCategories"
)

// Store is the persistence port. Save serializes value as JSON and writes it
// under key, replacing any previous document. Load decodes the stored
// document into out and reports whether the key held a readable value.
// Delete removes a key and is a no-op when it is already absent.
type Store interface {
	Save(key string, value any) error
	Load(key string, out any) (bool, error)
	Delete(key string) error
}
