// Package app owns the live entry list and applies user intents to it.
//
// Every successful mutation is followed by a save of the full entry sequence,
// so the CLI, the terminal UI and the MCP server share the same behaviour.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tableflip.dev/todos/pkg/entry"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/placeholder"
	"tableflip.dev/todos/pkg/state"
	"tableflip.dev/todos/pkg/store"
)

// Service is not safe for concurrent use; callers serialize access.
type Service struct {
	persistence store.Persistence
	logger      *slog.Logger
	state       *state.State
}

// Options tune how a Service starts.
type Options struct {
	// Placeholders is the number of generated entries used when nothing is
	// stored yet.
	Placeholders int
	Logger       *slog.Logger
}

// New loads the stored entries, falling back to placeholders or an empty list.
func New(ctx context.Context, p store.Persistence, opts Options) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "app")

	entries, ok := p.Load(ctx)
	if !ok {
		entries = placeholder.Entries(opts.Placeholders, nil)
		logger.Info("starting with a fresh list", "placeholders", len(entries))
		// Generated entries are stored right away so the next run addresses
		// the same list.
		if len(entries) > 0 {
			if err := p.Save(ctx, entries); err != nil {
				logger.Warn("storing placeholders failed", "error", err)
			}
		}
	}
	return &Service{
		persistence: p,
		logger:      logger,
		state:       state.New(entries),
	}, nil
}

func (s *Service) save(ctx context.Context, op string) error {
	if err := s.persistence.Save(ctx, s.state.Entries()); err != nil {
		s.logger.Error("save failed", "op", op, "error", err)
		return fmt.Errorf("app: %s: %w", op, err)
	}
	s.logger.Debug("applied", "op", op, "total", s.state.Total(), "completed", s.state.TotalCompleted())
	return nil
}

// Add appends text as a new entry and clears the draft.
func (s *Service) Add(ctx context.Context, text string) error {
	s.state.Add(text)
	s.state.Draft = ""
	return s.save(ctx, "add")
}

// UpdateDraft stores the text of the entry being typed.
func (s *Service) UpdateDraft(text string) {
	s.state.Draft = text
}

// CommitDraft adds the current draft as a new entry.
func (s *Service) CommitDraft(ctx context.Context) error {
	return s.Add(ctx, s.state.Draft)
}

// SetFilter changes the active filter. Leaving a live search restores the
// pre-search entries, which is persisted like any other mutation.
func (s *Service) SetFilter(ctx context.Context, f filter.Filter) error {
	wasSearching := s.state.Searching()
	s.state.SetFilter(f)
	if wasSearching && !s.state.Searching() {
		return s.save(ctx, "set filter")
	}
	return nil
}

// ToggleAll completes every visible entry unless all of them already are,
// in which case it reopens them.
func (s *Service) ToggleAll(ctx context.Context) error {
	s.state.ToggleAll(!s.state.IsAllCompleted())
	return s.save(ctx, "toggle all")
}

func (s *Service) ClearCompleted(ctx context.Context) error {
	s.state.ClearCompleted()
	return s.save(ctx, "clear completed")
}

// UpdateSearch stores the search text without applying it.
func (s *Service) UpdateSearch(text string) {
	s.state.UpdateSearch(text)
}

// CommitSearch applies the stored search text.
func (s *Service) CommitSearch(ctx context.Context) error {
	s.state.CommitSearch()
	return s.save(ctx, "search")
}

func (s *Service) Toggle(ctx context.Context, i int) error {
	if err := s.state.Toggle(i); err != nil {
		return fmt.Errorf("app: toggle: %w", err)
	}
	return s.save(ctx, "toggle")
}

// ToggleEdit enters or leaves edit mode and seeds the edit buffer with the
// entry's description.
func (s *Service) ToggleEdit(ctx context.Context, i int) error {
	e, err := s.state.Entry(i)
	if err != nil {
		return fmt.Errorf("app: toggle edit: %w", err)
	}
	s.state.EditValue = e.Description
	if err := s.state.ToggleEdit(i); err != nil {
		return fmt.Errorf("app: toggle edit: %w", err)
	}
	return s.save(ctx, "toggle edit")
}

// UpdateEdit stores the text of the entry being edited.
func (s *Service) UpdateEdit(text string) {
	s.state.EditValue = text
}

func (s *Service) CompleteEdit(ctx context.Context, i int, text string) error {
	if err := s.state.CompleteEdit(i, text); err != nil {
		return fmt.Errorf("app: edit: %w", err)
	}
	s.state.EditValue = ""
	return s.save(ctx, "edit")
}

// CommitEdit completes the edit with the edit buffer.
func (s *Service) CommitEdit(ctx context.Context, i int) error {
	return s.CompleteEdit(ctx, i, s.state.EditValue)
}

func (s *Service) Remove(ctx context.Context, i int) error {
	if err := s.state.Remove(i); err != nil {
		return fmt.Errorf("app: remove: %w", err)
	}
	return s.save(ctx, "remove")
}

// Reload replaces the entries with what is stored. It does nothing while a
// search session is live, since the stored list is the narrowed one.
func (s *Service) Reload(ctx context.Context) bool {
	if s.state.Searching() {
		return false
	}
	entries, ok := s.persistence.Load(ctx)
	if !ok {
		return false
	}
	s.state.Replace(entries)
	return true
}

// Close ends a live search session so the full list is what stays stored.
func (s *Service) Close(ctx context.Context) error {
	if !s.state.Searching() {
		return nil
	}
	s.state.EndSearch()
	return s.save(ctx, "close")
}

func (s *Service) View() []entry.Entry   { return s.state.View() }
func (s *Service) Total() int            { return s.state.Total() }
func (s *Service) TotalCompleted() int   { return s.state.TotalCompleted() }
func (s *Service) TotalActive() int      { return s.state.TotalActive() }
func (s *Service) IsAllCompleted() bool  { return s.state.IsAllCompleted() }
func (s *Service) Filter() filter.Filter { return s.state.Filter() }
func (s *Service) Draft() string         { return s.state.Draft }
func (s *Service) EditValue() string     { return s.state.EditValue }
func (s *Service) SearchValue() string   { return s.state.SearchValue }
func (s *Service) Searching() bool       { return s.state.Searching() }

// Entry returns the entry at a filtered index.
func (s *Service) Entry(i int) (entry.Entry, error) {
	return s.state.Entry(i)
}
