package memo

import (
	"fmt"
	"os"
	"time"
)

// Store is the only surface touching the filesystem.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: Exists is a non-throwing probe; the rest return I/O errors.
type Store interface {
	// Exists reports whether an entry is present at path.
	Exists(path string) bool

	// Read returns the full entry content; the caller deserializes.
	Read(path string) ([]byte, error)

	// Write ensures dir exists, then replaces the entry at path wholesale.
	Write(dir, path string, data []byte) error

	// Touch refreshes the entry's modification time without altering
	// content, signalling recent reuse for external housekeeping.
	Touch(path string) error
}

// FileStore is the os-backed Store. Concurrent writers race with
// last-write-wins semantics; no corruption guarantee exists beyond what the
// platform's rename-free WriteFile provides.
type FileStore struct{}

// NewFileStore creates a Store backed by the local filesystem.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Exists reports whether path names an existing file.
func (s *FileStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read returns the full content of the entry at path.
func (s *FileStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memo: read cache entry: %w", err)
	}
	return data, nil
}

// Write creates the directory chain and replaces the entry content.
func (s *FileStore) Write(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("memo: create cache dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("memo: write cache entry: %w", err)
	}
	return nil
}

// Touch sets the entry's access and modification times to now.
func (s *FileStore) Touch(path string) error {
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("memo: touch cache entry: %w", err)
	}
	return nil
}

// Ensure FileStore implements Store
var _ Store = (*FileStore)(nil)
