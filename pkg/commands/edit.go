package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/app"
	"tableflip.dev/todos/pkg/commands/options"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	var (
		index int
		text  string
	)

	cmd := &cobra.Command{
		Use:   "edit <index> <text>",
		Short: "Replace the text of an entry",
		Long: options.Wrap80(`Replace the text of an entry. The entry is left open,
even if it was completed or being edited.`),
		Example: `
todos edit 0 walk the dog twice
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an entry index and the new text")
			}
			i, err := options.ParseIndex(args[0])
			if err != nil {
				return err
			}
			index = i
			text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := mutate(cmd.Context(), cmd.OutOrStdout(), fo.Filter, func(ctx context.Context, svc *app.Service) error {
				return svc.CompleteEdit(ctx, index, text)
			})
			return output.HandleError(err)
		},
	}

	options.AddFilterArg(cmd, fo)
	registerFilterCompletion(cmd)
	topLevel.AddCommand(cmd)
}
