package commands

import (
	"log/slog"

	"github.com/leapstack-labs/enginegen/internal/cli/config"
	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/internal/generator"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or the defaults when no
// configuration was loaded (commands built without the root command).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newGenerator builds a generator from the configuration. A non-empty
// fuelName overrides the configured fuel.
func (cc *CommandContext) newGenerator(fuelName string) (*generator.Generator, error) {
	f, err := cc.Cfg.FuelRecord()
	if fuelName != "" {
		f, err = fuel.Lookup(fuelName)
	}
	if err != nil {
		return nil, err
	}

	opts := []generator.Option{
		generator.WithFuel(f),
		generator.WithVehicle(cc.Cfg.Vehicle),
		generator.WithTransmission(cc.Cfg.Transmission),
		generator.WithIgnition(cc.Cfg.Ignition),
		generator.WithLogger(cc.Logger),
	}
	if cc.Cfg.Seed != 0 {
		opts = append(opts, generator.WithRand(generator.NewSource(cc.Cfg.Seed)))
	}
	return generator.New(opts...), nil
}
