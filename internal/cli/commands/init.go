package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	intconfig "github.com/leapstack-labs/enginegen/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new enginegen project",
		Long: `Initialize a new enginegen project.

This creates:
  - enginegen.yaml project configuration
  - engine.star preset script the configuration points at

Use --example to create a project with a V6 preset script, a YAML preset,
vehicle and gearbox settings and a sample .env file.`,
		Example: `  # Initialize in current directory
  enginegen init

  # Initialize with a full working example
  enginegen init --example

  # Initialize in a new directory
  enginegen init my-engine --example

  # Force overwrite existing config
  enginegen init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cc := NewCommandContext(cmd)
			template := "minimal"
			if example {
				template = "example"
			}
			return runInit(cc.Renderer, dir, template, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Create a full example project")

	return cmd
}

func runInit(r *output.Renderer, dir, template string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := filepath.Join(dir, intconfig.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", intconfig.ConfigFileName)
	}

	if err := copyTemplate(template, dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	files, err := listTemplateFiles(template)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{"directory": dir, "files": files})
	}

	for _, f := range files {
		r.StatusLine(f, "success", "")
	}
	r.Println("")
	r.Success("enginegen project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit the preset script the config points at")
	r.Println("  2. Run 'enginegen timing' to check the crank and cam phasing")
	r.Println("  3. Run 'enginegen generate --out engine.mr' to write the simulator script")

	return nil
}
