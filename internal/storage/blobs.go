// ABOUTME: Filesystem-backed object store for source documents
// ABOUTME: Blobs live under the data directory and are addressed by name
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore serves raw document bytes from a directory on disk.
type BlobStore struct {
	dir string
}

// NewBlobStore creates the blob directory if needed and returns the store.
func NewBlobStore(dataDir string) (*BlobStore, error) {
	dir := filepath.Join(dataDir, "blobs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Download returns the raw bytes of the named blob. Path separators in the
// name are rejected so callers cannot escape the blob directory.
func (b *BlobStore) Download(_ context.Context, name string) ([]byte, error) {
	if strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("invalid blob name: %s", name)
	}
	data, err := os.ReadFile(filepath.Join(b.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}
	return data, nil
}

// Put stores raw bytes under the given name, overwriting any existing blob.
func (b *BlobStore) Put(name string, data []byte) error {
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid blob name: %s", name)
	}
	if err := os.WriteFile(filepath.Join(b.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", name, err)
	}
	return nil
}
