package persist

// Store is the key-value persistence boundary. The core saves and loads
// opaque values through it and owns no storage format itself.
type Store interface {
	// Save serializes value under key.
	Save(key string, value any) error
	// Load deserializes the value under key into the target. Returns false
	// when the key is absent; the caller's default stands.
	Load(key string, into any) (bool, error)
}
