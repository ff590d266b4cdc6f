package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/enginegen/internal/cli/config"
	"github.com/leapstack-labs/enginegen/internal/preset"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sourceFlags selects the engine layout a command works on: a built-in
// preset, a preset file, or a generated layout.
type sourceFlags struct {
	preset    string
	file      string
	cylinders int
	style     string
	bankAngle float64
	name      string
	set       []string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&s.preset, "preset", "p", "", "Built-in preset name or preset file")
	fs.StringVarP(&s.file, "file", "f", "", "Preset file (.yaml, .yml or .star)")
	fs.IntVarP(&s.cylinders, "cylinders", "n", 0, "Generate a layout with this many cylinders")
	fs.StringVar(&s.style, "style", "inline", "Layout style for --cylinders (inline|v)")
	fs.Float64Var(&s.bankAngle, "bank-angle", 0, "Inline tilt, or included angle between V banks, in degrees")
	fs.StringVar(&s.name, "name", "", "Engine name")
	fs.StringArrayVar(&s.set, "set", nil, "Override an engine parameter (key=value, repeatable)")

	cmd.MarkFlagsMutuallyExclusive("preset", "file", "cylinders")

	_ = cmd.RegisterFlagCompletionFunc("preset", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("file", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"yaml", "yml", "star"}, cobra.ShellCompDirectiveFilterFileExt
	})
	_ = cmd.RegisterFlagCompletionFunc("style", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"inline", "v"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// resolve loads the preset the flags select. With no source flag the
// configured preset is used.
func (s *sourceFlags) resolve(ctx context.Context, flags *pflag.FlagSet, cfg *config.Config, logger *slog.Logger) (*preset.Preset, error) {
	switch {
	case s.file != "":
		return preset.Load(ctx, s.file, logger)
	case s.preset != "":
		return loadPreset(ctx, s.preset, logger)
	case s.cylinders != 0:
		style, err := core.ParseStyle(s.style)
		if err != nil {
			return nil, err
		}
		var angles []float64
		if flags != nil && flags.Changed("bank-angle") {
			angles = bankAngles(style, s.bankAngle)
		}
		return planPreset(s.cylinders, style, cfg.TieBreak, angles)
	case cfg.Preset != "":
		return loadPreset(ctx, cfg.Preset, logger)
	default:
		return nil, fmt.Errorf("no engine selected: use --preset, --file or --cylinders (built-in presets: %s)",
			strings.Join(preset.Names(), ", "))
	}
}

// engine resolves the preset and builds the engine with overrides applied
// in order: preset params, project config, --set, --name.
func (s *sourceFlags) engine(ctx context.Context, flags *pflag.FlagSet, cfg *config.Config, logger *slog.Logger) (*core.Engine, error) {
	p, err := s.resolve(ctx, flags, cfg, logger)
	if err != nil {
		return nil, err
	}

	overrides, err := parseSet(s.set)
	if err != nil {
		return nil, err
	}
	if s.name != "" {
		overrides.Name = s.name
	}
	return buildEngine(p, cfg, overrides)
}

// loadPreset returns a built-in preset, or loads ref as a file when it has
// a preset file extension.
func loadPreset(ctx context.Context, ref string, logger *slog.Logger) (*preset.Preset, error) {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml", ".star":
		return preset.Load(ctx, ref, logger)
	}
	if p, ok := preset.Get(ref); ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown preset %q (available: %s)", ref, strings.Join(preset.Names(), ", "))
}

// planPreset generates a layout. Nil angles take the style's defaults.
func planPreset(count int, style core.Style, tb core.TieBreak, angles []float64) (*preset.Preset, error) {
	plan, err := firing.Generate(count, style, firing.WithTieBreak(tb))
	if err != nil {
		return nil, err
	}
	if angles == nil {
		angles = firing.DefaultBankAngles(style)
	}
	name := fmt.Sprintf("%s%d", strings.ToUpper(style.String()[:1]), count)
	p := preset.FromPlan(name, plan, angles)
	// Generated layouts carry no name of their own.
	p.Params.Name = core.DefaultEngineName
	return p, nil
}

// bankAngles turns --bank-angle into per-bank angles: the tilt of an
// inline bank, or the included angle of a V split evenly either side.
func bankAngles(style core.Style, angle float64) []float64 {
	if style == core.StyleV {
		return []float64{-angle / 2, angle / 2}
	}
	return []float64{angle}
}

// parseSet decodes repeated key=value flags onto core.Params.
func parseSet(pairs []string) (core.Params, error) {
	if len(pairs) == 0 {
		return core.Params{}, nil
	}
	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return core.Params{}, fmt.Errorf("%w: --set %q is not key=value", core.ErrInvalidParams, pair)
		}
		raw[strings.ReplaceAll(key, "-", "_")] = strings.TrimSpace(value)
	}
	p, err := preset.DecodeParams(raw)
	if err != nil {
		return core.Params{}, fmt.Errorf("%w: %v", core.ErrInvalidParams, err)
	}
	return p, nil
}

// buildEngine layers the project config and overrides onto a preset.
func buildEngine(p *preset.Preset, cfg *config.Config, overrides core.Params) (*core.Engine, error) {
	p.Params = p.Params.Merge(cfg.Params()).Merge(overrides)
	return p.Engine()
}
