package commands

import (
	"context"
	"io"
	"log/slog"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/commands/options"
	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/runner/list"
	"tableflip.dev/todos/pkg/store"
)

// session is an opened service with the storage behind it.
type session struct {
	svc *app.Service
	gw  *store.Gateway
}

func openSession(ctx context.Context, f filter.Filter) (*session, error) {
	logger := slog.Default()
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	gw, err := store.Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	svc, err := app.New(ctx, gw, app.Options{Placeholders: cfg.Placeholders(), Logger: logger})
	if err != nil {
		_ = gw.Close()
		return nil, err
	}
	if err := svc.SetFilter(ctx, f); err != nil {
		_ = gw.Close()
		return nil, err
	}
	return &session{svc: svc, gw: gw}, nil
}

func (s *session) Close(ctx context.Context) error {
	err := s.svc.Close(ctx)
	if cerr := s.gw.Close(); err == nil {
		err = cerr
	}
	return err
}

// mutate applies op to the entries under f and prints the resulting view.
func mutate(ctx context.Context, out io.Writer, f filter.Filter, op func(context.Context, *app.Service) error) error {
	s, err := openSession(ctx, f)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close(ctx) }()

	if err := op(ctx, s.svc); err != nil {
		return err
	}
	l := list.List{Service: s.svc, Output: options.OutputPretty, ShowIndex: true, Out: out}
	return l.Do(ctx)
}
