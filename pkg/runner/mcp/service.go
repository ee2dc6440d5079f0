// Package mcp serves the entry list over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"sync"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/runner/list"
	"tableflip.dev/todos/pkg/store"
)

// Service serializes MCP calls onto one app.Service.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// FilterDTO describes one filter for clients.
type FilterDTO struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// NewService wraps svc.
func NewService(svc *app.Service) *Service {
	return &Service{app: svc}
}

func (s *Service) do(ctx context.Context, op func(context.Context, *app.Service) error) (list.Listing, error) {
	if s.app == nil {
		return list.Listing{}, errors.New("mcp service is not configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if op != nil {
		if err := op(ctx, s.app); err != nil {
			return list.Listing{}, err
		}
	}
	return list.NewListing(s.app), nil
}

// List returns the current view and counters.
func (s *Service) List(ctx context.Context) (list.Listing, error) {
	return s.do(ctx, nil)
}

func (s *Service) Add(ctx context.Context, description string) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.Add(ctx, description)
	})
}

func (s *Service) Toggle(ctx context.Context, i int) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.Toggle(ctx, i)
	})
}

func (s *Service) ToggleEdit(ctx context.Context, i int) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.ToggleEdit(ctx, i)
	})
}

func (s *Service) CompleteEdit(ctx context.Context, i int, description string) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.CompleteEdit(ctx, i, description)
	})
}

func (s *Service) Remove(ctx context.Context, i int) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.Remove(ctx, i)
	})
}

func (s *Service) ToggleAll(ctx context.Context) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.ToggleAll(ctx)
	})
}

func (s *Service) ClearCompleted(ctx context.Context) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.ClearCompleted(ctx)
	})
}

// SetFilter switches the filter named by name, e.g. "active" or "#/completed".
func (s *Service) SetFilter(ctx context.Context, name string) (list.Listing, error) {
	f, err := filter.Parse(name)
	if err != nil {
		return list.Listing{}, err
	}
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		return a.SetFilter(ctx, f)
	})
}

// Search stores text in the search buffer and commits it. Empty text ends a
// live search session.
func (s *Service) Search(ctx context.Context, text string) (list.Listing, error) {
	return s.do(ctx, func(ctx context.Context, a *app.Service) error {
		a.UpdateSearch(text)
		return a.CommitSearch(ctx)
	})
}

// Filters lists every filter, marking the active one.
func (s *Service) Filters(ctx context.Context) ([]FilterDTO, error) {
	var out []FilterDTO
	_, err := s.do(ctx, func(_ context.Context, a *app.Service) error {
		current := a.Filter()
		for _, f := range filter.Filters() {
			dto := FilterDTO{Name: f.String(), Label: f.Label(), Href: f.Href(), Active: f.SameKind(current)}
			if dto.Active {
				dto.Name = current.String()
			}
			out = append(out, dto)
		}
		return nil
	})
	return out, err
}

// Reload replaces the entries with what is stored, unless a search is live.
func (s *Service) Reload(ctx context.Context) bool {
	if s.app == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Reload(ctx)
}

// Follow reloads on every storage event until events is closed or ctx is done.
func (s *Service) Follow(ctx context.Context, events <-chan store.Event) {
	if events == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			s.Reload(ctx)
		}
	}
}

// Close ends a live search session so the full list stays stored.
func (s *Service) Close(ctx context.Context) error {
	if s.app == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.app.Close(ctx)
}
