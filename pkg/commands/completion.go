package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/filter"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(todos completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(todos completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func filterCompletions(toComplete string) []string {
	var out []string
	for _, f := range filter.Filters() {
		name := f.String()
		if f.Kind == filter.KindSearch {
			name += ":"
		}
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out
}

func registerFilterCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return filterCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	})
}
