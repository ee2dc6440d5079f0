package commands

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"tableflip.dev/todos/pkg/commands/options"
)

const modulePath = "tableflip.dev/todos"

// Set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion prefers the ldflags version and falls back to the module
// version recorded by go install.
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path == modulePath {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}

func addVersion(topLevel *cobra.Command) {
	shortened := false
	format := &options.FormatOptions{Output: options.OutputPretty}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get todos version.",
		Example: `
todos version
todos version -o yaml
todos version --short
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := format.Validate(); err != nil {
				return output.HandleError(err)
			}
			v := buildVersion()
			out := cmd.OutOrStdout()
			if shortened {
				_, err := fmt.Fprintln(out, v)
				return err
			}
			switch strings.ToLower(format.Output) {
			case options.OutputJSON:
				_, err := fmt.Fprint(out, goversion.New(v, commit, date).ToJSON())
				return err
			case options.OutputYAML:
				_, err := fmt.Fprint(out, goversion.New(v, commit, date).ToYAML())
				return err
			default:
				bold := color.New(color.Bold)
				_, _ = bold.Fprint(out, "todos ")
				_, _ = fmt.Fprintln(out, v)
				_, err := fmt.Fprintf(out, "  module  %s\n  commit  %s\n  built   %s\n", modulePath, commit, date)
				return err
			}
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&format.Output, "output", "o", options.OutputPretty, "Output format. One of 'pretty', 'json' or 'yaml'.")

	topLevel.AddCommand(cmd)
}
