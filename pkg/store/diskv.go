package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/peterbourgon/diskv/v3"
)

const lockFile = ".lock"

// DiskvBackend keeps each slot in its own file under a base directory.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
	lock     *flock.Flock
}

// NewDiskv opens (and creates) a diskv store rooted at basePath.
func NewDiskv(basePath string) (*DiskvBackend, error) {
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, ".tmp"),
			Transform: flatTransform,
			// Other processes rewrite the slot, so reads always go to disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		lock:     flock.New(filepath.Join(basePath, lockFile)),
	}, nil
}

func flatTransform(string) []string { return []string{} }

// BasePath is the directory holding the slots.
func (b *DiskvBackend) BasePath() string {
	return b.basePath
}

func (b *DiskvBackend) Get(_ context.Context, key string) ([]byte, error) {
	if err := b.lock.RLock(); err != nil {
		return nil, fmt.Errorf("store: lock: %w", err)
	}
	defer func() { _ = b.lock.Unlock() }()

	if !b.d.Has(key) {
		return nil, ErrNotFound
	}
	return b.d.Read(key)
}

func (b *DiskvBackend) Set(_ context.Context, key string, value []byte) error {
	if err := b.lock.Lock(); err != nil {
		return fmt.Errorf("store: lock: %w", err)
	}
	defer func() { _ = b.lock.Unlock() }()

	return b.d.Write(key, value)
}

func (b *DiskvBackend) Close() error {
	return b.lock.Close()
}
