package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/commands/options"
	"tableflip.dev/todos/pkg/filter"
)

func addClearCompleted(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed entry",
		Example: `
todos clear-completed
todos clear-completed --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mutate(cmd.Context(), cmd.OutOrStdout(), filter.All(), func(ctx context.Context, svc *app.Service) error {
				n := svc.TotalCompleted()
				if n == 0 {
					return nil
				}
				ok, err := co.Confirm(fmt.Sprintf("Remove %d completed entries", n))
				if err != nil || !ok {
					return err
				}
				return svc.ClearCompleted(ctx)
			})
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
