package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/filter"
	teaui "tableflip.dev/todos/pkg/runner/tea"
	"tableflip.dev/todos/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
todos ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("todos ui needs a terminal")
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			s, err := openSession(ctx, filter.All())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close(ctx) }()

			events, err := s.gw.Watch(ctx)
			if err != nil {
				if !errors.Is(err, store.ErrWatchUnsupported) {
					return err
				}
				slog.Debug("storage cannot be watched, changes from other processes will not show", "error", err)
			}
			return teaui.Run(ctx, s.svc, events)
		},
	}

	topLevel.AddCommand(cmd)
}
