package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists values as JSON files, one file per key. Writes go
// through a temp file and rename so a crash never leaves a half-written
// value.
type FileStore struct {
	mu      sync.RWMutex
	dataDir string
}

// NewFileStore creates a file-backed store rooted at dataDir.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) filePath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// Save implements Store.
func (s *FileStore) Save(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %q: %w", key, err)
	}

	path := s.filePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("committing %q: %w", key, err)
	}
	return nil
}

// Load implements Store.
func (s *FileStore) Load(key string, into any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %q: %w", key, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return false, fmt.Errorf("unmarshaling %q: %w", key, err)
	}
	return true, nil
}
