package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/commands/options"
	"tableflip.dev/todos/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	fmtOpts := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the entries",
		Example: `
todos list
todos list --filter active
todos list -f search:milk -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.HandleError(runList(cmd, fo, fmtOpts, false))
		},
	}

	options.AddFilterArg(cmd, fo)
	options.AddFormatArgs(cmd, fmtOpts)
	registerFilterCompletion(cmd)
	topLevel.AddCommand(cmd)
}

func addStats(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	fmtOpts := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print how many entries are left and completed",
		Example: `
todos stats
todos stats -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.HandleError(runList(cmd, fo, fmtOpts, true))
		},
	}

	options.AddFilterArg(cmd, fo)
	options.AddFormatArgs(cmd, fmtOpts)
	registerFilterCompletion(cmd)
	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command, fo *options.FilterOptions, fmtOpts *options.FormatOptions, statsOnly bool) error {
	if err := fmtOpts.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()
	s, err := openSession(ctx, fo.Filter)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close(ctx) }()

	l := list.List{
		Service:   s.svc,
		Output:    fmtOpts.Output,
		ShowIndex: fmtOpts.ShowIndex,
		StatsOnly: statsOnly,
		Out:       cmd.OutOrStdout(),
	}
	return l.Do(ctx)
}
