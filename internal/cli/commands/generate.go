package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenerateOptions holds options for the generate command.
type GenerateOptions struct {
	source sourceFlags
	Fuel   string
	Out    string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate an engine simulator script",
		Long: `Generate an engine description for the simulator.

The engine layout comes from a built-in preset (--preset), a preset file
(--file, YAML or Starlark), or a generated layout (--cylinders with --style).
Parameters from enginegen.yaml are applied on top of the preset, then any
--set overrides.

Without --out the script is written to stdout. With --out it is written
atomically: the target is either replaced completely or left untouched.`,
		Example: `  # Built-in inline four to stdout
  enginegen generate --preset i4

  # Generated 60 degree V6 running on E85
  enginegen generate -n 6 --style v --bank-angle 60 --fuel e85 --out v6.mr

  # Preset script with parameter overrides
  enginegen generate -f engine.star --set bore=92 --set stroke=84 --out engine.mr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runGenerate(cmd.Context(), cmd.Flags(), cc, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVar(&opts.Fuel, "fuel", "", "Fuel type (overrides config)")
	cmd.Flags().StringVarP(&opts.Out, "out", "O", "", "Output file (default: stdout)")

	_ = cmd.RegisterFlagCompletionFunc("fuel", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return fuel.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runGenerate(ctx context.Context, flags *pflag.FlagSet, cc *CommandContext, opts *GenerateOptions) error {
	e, err := opts.source.engine(ctx, flags, cc.Cfg, cc.Logger)
	if err != nil {
		return err
	}
	return emit(cc, e, opts)
}

// emit renders e to opts.Out, or to stdout when no output file is set.
func emit(cc *CommandContext, e *core.Engine, opts *GenerateOptions) error {
	g, err := cc.newGenerator(opts.Fuel)
	if err != nil {
		return err
	}

	if opts.Out == "" {
		return g.Generate(cc.Renderer.Writer(), e)
	}
	if err := g.WriteFile(opts.Out, e); err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(map[string]any{
			"path":      opts.Out,
			"name":      e.Params().Name,
			"cylinders": e.CylinderCount(),
			"banks":     e.BankCount(),
		})
	}
	r.Success(fmt.Sprintf("Wrote %s", opts.Out))
	r.Muted(describeEngine(e))
	return nil
}
