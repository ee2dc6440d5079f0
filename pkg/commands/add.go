package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/filter"
)

func addAdd(topLevel *cobra.Command) {
	var text string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Example: `
todos add walk the dog
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the text of the entry")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mutate(cmd.Context(), cmd.OutOrStdout(), filter.All(), func(ctx context.Context, svc *app.Service) error {
				return svc.Add(ctx, text)
			})
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
