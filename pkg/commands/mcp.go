package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/filter"
	"tableflip.dev/todos/pkg/runner/mcp"
	"tableflip.dev/todos/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server on stdio",
		Long: `Launch an MCP server that exposes the todo list and its operations
to MCP clients over stdin and stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			s, err := openSession(ctx, filter.All())
			if err != nil {
				return err
			}
			defer func() { _ = s.gw.Close() }()

			events, err := s.gw.Watch(ctx)
			if err != nil {
				if !errors.Is(err, store.ErrWatchUnsupported) {
					return err
				}
				slog.Debug("storage cannot be watched, writes from other processes may be overwritten", "error", err)
			}

			runner := mcp.Runner{
				Service: s.svc,
				Name:    "todos",
				Version: version,
				Logger:  slog.Default(),
				Events:  events,
			}
			return runner.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
