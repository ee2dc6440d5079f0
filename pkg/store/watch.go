package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventSlotChanged indicates the watched slot was rewritten.
	EventSlotChanged EventType = iota

	// EventInvalidated signals the watcher could not classify a change and
	// callers should reload anyway.
	EventInvalidated
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events for key until ctx is cancelled. Callers should
// drain the returned channel; events are dropped rather than blocking the
// watcher. The channel is closed once ctx is done or the watcher fails.
// A nil logger uses slog.Default.
func (b *DiskvBackend) Watch(ctx context.Context, key string, logger *slog.Logger) (<-chan Event, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if b.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("closing watcher failed", "error", err)
			}
		})
	}

	if err := watcher.Add(b.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", b.basePath, err)
	}

	events := make(chan Event, 16)
	var sendMu sync.Mutex
	closed := false
	send := func(ev Event) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if closed {
			return
		}
		select {
		case events <- ev:
		default:
			// The consumer already has a reload pending.
		}
	}

	go func() {
		defer func() {
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()
		defer closeWatcher()
		defer logger.Debug("watch stopped", "path", b.basePath)

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Debug("watcher error, invalidating", "error", err)
				throttle.Enqueue(Event{Type: EventInvalidated, Key: key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != key {
					continue
				}
				const changed = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove
				if evt.Op&changed == 0 {
					continue
				}
				throttle.Enqueue(Event{Type: EventSlotChanged, Key: key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces a burst of writes into a single notification.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	t.mu.Unlock()

	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
