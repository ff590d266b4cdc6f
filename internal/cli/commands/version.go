package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display enginegen version and the default simulator version it targets.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := getConfig()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "enginegen v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Engine simulator script generator (sim_version %s)\n", cfg.SimVersion)
		},
	}
}
