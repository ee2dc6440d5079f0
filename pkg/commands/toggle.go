package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/commands/options"
)

func addToggle(topLevel *cobra.Command) {
	addIndexCommand(topLevel, &cobra.Command{
		Use:     "toggle <index>",
		Aliases: []string{"done"},
		Short:   "Toggle an entry between open and completed",
		Example: `
todos toggle 0
todos toggle --filter active 2
`,
	}, func(ctx context.Context, svc *app.Service, i int) error {
		return svc.Toggle(ctx, i)
	})
}

func addToggleEdit(topLevel *cobra.Command) {
	addIndexCommand(topLevel, &cobra.Command{
		Use:   "toggle-edit <index>",
		Short: "Mark an entry as being edited, or open it again",
		Example: `
todos toggle-edit 1
`,
	}, func(ctx context.Context, svc *app.Service, i int) error {
		return svc.ToggleEdit(ctx, i)
	})
}

func addRemove(topLevel *cobra.Command) {
	addIndexCommand(topLevel, &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   "Remove an entry",
		Example: `
todos remove 3
`,
	}, func(ctx context.Context, svc *app.Service, i int) error {
		return svc.Remove(ctx, i)
	})
}

// addIndexCommand wires a command taking one filtered index.
func addIndexCommand(topLevel *cobra.Command, cmd *cobra.Command, op func(context.Context, *app.Service, int) error) {
	fo := &options.FilterOptions{}
	var index int

	cmd.Args = func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires an entry index")
		}
		i, err := options.ParseIndex(args[0])
		if err != nil {
			return err
		}
		index = i
		return nil
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		err := mutate(cmd.Context(), cmd.OutOrStdout(), fo.Filter, func(ctx context.Context, svc *app.Service) error {
			return op(ctx, svc, index)
		})
		return output.HandleError(err)
	}

	options.AddFilterArg(cmd, fo)
	registerFilterCompletion(cmd)
	topLevel.AddCommand(cmd)
}

func addToggleAll(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "toggle-all",
		Short: "Complete every visible entry, or reopen them if all are completed",
		Example: `
todos toggle-all
todos toggle-all --filter search:milk
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mutate(cmd.Context(), cmd.OutOrStdout(), fo.Filter, func(ctx context.Context, svc *app.Service) error {
				return svc.ToggleAll(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)
	registerFilterCompletion(cmd)
	topLevel.AddCommand(cmd)
}
