package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/todos/pkg/commands/options"
)

var (
	output  = &options.OutputOptions{}
	logging = &options.LoggingOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:          "todos",
		Short:        options.Wrap80("A todo list on the command line, in the terminal and over MCP."),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			output.Out = cmd.ErrOrStderr()
			if output.JSON {
				// Errors are printed as JSON by output.HandleError.
				cmd.Root().SilenceErrors = true
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddLoggingArgs(cmd, logging)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addStats(topLevel)
	addToggle(topLevel)
	addToggleEdit(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addToggleAll(topLevel)
	addClearCompleted(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}
