package commands

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

// installTarget is the go install argument for the requested version.
func installTarget(args []string) string {
	v := "latest"
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		v = strings.TrimSpace(args[0])
		if v != "latest" && !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
	}
	return modulePath + "@" + v
}

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade [version]",
		Short: "Upgrade todos cli.",
		Example: `
todos upgrade
todos upgrade v0.2.0
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := installTarget(args)
			ex := exec.CommandContext(cmd.Context(), "go", "install", target)
			ex.Stdout = cmd.OutOrStdout()
			ex.Stderr = cmd.ErrOrStderr()
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("upgrade to %s: %w", target, err))
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "installed %s (was %s)\n", target, buildVersion())
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
