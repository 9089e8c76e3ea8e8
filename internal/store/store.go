// Package store persists raw uploads to disk so measured images can be
// audited or reprocessed later.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store writes uploaded image bytes into a directory, one file per
// upload with a generated name. Safe for concurrent use; every Save
// picks a fresh UUID so writers never collide.
type Store struct {
	dir string
}

// New creates the upload directory if needed and returns a store
// rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the raw bytes under a UUID-based filename with the given
// extension (e.g. ".png") and returns the full path.
func (s *Store) Save(data []byte, ext string) (string, error) {
	name := fmt.Sprintf("captured_image_%s%s", uuid.NewString(), ext)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}
