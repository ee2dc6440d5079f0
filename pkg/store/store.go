// Package store persists the entry sequence into a single key/value slot.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/todos/pkg/entry"
)

// ErrNotFound is returned by a Backend when the slot has never been written.
var ErrNotFound = errors.New("store: slot not found")

// ErrWatchUnsupported is returned by Watch when the backend cannot observe
// writes made by other processes.
var ErrWatchUnsupported = errors.New("store: backend does not support watching")

// Backend is a key/value store holding opaque blobs.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Watcher is implemented by backends that can report changes to a slot.
type Watcher interface {
	Watch(ctx context.Context, key string, logger *slog.Logger) (<-chan Event, error)
}

// Persistence defines the persistence contract for the entry sequence.
type Persistence interface {
	// Load returns the stored sequence. ok is false when nothing usable is
	// stored; callers fall back to a fresh list.
	Load(ctx context.Context) (entries []entry.Entry, ok bool)
	// Save overwrites the slot with the full sequence.
	Save(ctx context.Context, entries []entry.Entry) error
}

// Gateway serializes the entry sequence into one slot of a Backend.
type Gateway struct {
	backend Backend
	key     string
	logger  *slog.Logger
}

// NewGateway creates a Gateway writing to key. A nil logger uses slog.Default.
func NewGateway(backend Backend, key string, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		backend: backend,
		key:     key,
		logger:  logger.With("component", "store", "key", key),
	}
}

// Key is the slot the gateway writes to.
func (g *Gateway) Key() string {
	return g.key
}

func (g *Gateway) Save(ctx context.Context, entries []entry.Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	if err := g.backend.Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("store: write slot: %w", err)
	}
	g.logger.Debug("saved entries", "count", len(entries), "bytes", len(data))
	return nil
}

func (g *Gateway) Load(ctx context.Context) ([]entry.Entry, bool) {
	data, err := g.backend.Get(ctx, g.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			g.logger.Debug("no stored entries")
		} else {
			g.logger.Warn("read slot failed, starting fresh", "error", err)
		}
		return nil, false
	}
	entries, err := Decode(data)
	if err != nil {
		g.logger.Warn("stored entries are malformed, starting fresh", "error", err)
		return nil, false
	}
	g.logger.Debug("loaded entries", "count", len(entries))
	return entries, true
}

// Watch reports changes to the slot when the backend supports it.
func (g *Gateway) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := g.backend.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, g.key, g.logger)
}

func (g *Gateway) Close() error {
	return g.backend.Close()
}
