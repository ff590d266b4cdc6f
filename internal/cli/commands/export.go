package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/internal/preset"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Dir  string
	Fuel string
	Jobs int
}

// exportResult is one written script.
type exportResult struct {
	Preset    string `json:"preset"`
	Cylinders int    `json:"cylinders"`
	Path      string `json:"path"`
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [preset...]",
		Short: "Write simulator scripts for several presets at once",
		Long: `Generate one simulator script per preset into a directory.

Arguments are built-in preset names or preset files. With no arguments
every built-in preset is exported. Scripts are named after the preset
(lowercase, spaces as underscores) with the .mr extension and are written
in parallel; each write is atomic.`,
		Example: `  # Every built-in preset into ./engines
  enginegen export --dir engines

  # Two presets on methanol
  enginegen export v8 presets/v6.star --fuel methanol --dir out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			return runExport(cmd.Context(), cc, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", ".", "Output directory")
	cmd.Flags().StringVar(&opts.Fuel, "fuel", "", "Fuel type (overrides config)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "Scripts written in parallel")

	_ = cmd.RegisterFlagCompletionFunc("fuel", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return fuel.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.ValidArgsFunction = func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return preset.Names(), cobra.ShellCompDirectiveDefault
	}

	return cmd
}

func runExport(ctx context.Context, cc *CommandContext, refs []string, opts *ExportOptions) error {
	if len(refs) == 0 {
		refs = preset.Names()
	}

	// Resolve everything first so a bad name writes nothing.
	presets := make([]*preset.Preset, len(refs))
	seen := make(map[string]string, len(refs))
	for i, ref := range refs {
		p, err := loadPreset(ctx, ref, cc.Logger)
		if err != nil {
			return err
		}
		name := exportFileName(p.Name)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("presets %q and %q both export to %s", prev, ref, name)
		}
		seen[name] = ref
		presets[i] = p
	}

	if err := os.MkdirAll(opts.Dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", opts.Dir, err)
	}

	results := make([]exportResult, len(presets))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, p := range presets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := buildEngine(p, cc.Cfg, core.Params{})
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			// One generator per script: a seeded source is not safe to share.
			gen, err := cc.newGenerator(opts.Fuel)
			if err != nil {
				return err
			}
			path := filepath.Join(opts.Dir, exportFileName(p.Name))
			if err := gen.WriteFile(path, e); err != nil {
				return err
			}
			cc.Logger.Debug("exported preset", "preset", p.Name, "path", path)
			results[i] = exportResult{Preset: p.Name, Cylinders: e.CylinderCount(), Path: path}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(results)
	}

	rows := make([][]any, len(results))
	for i, res := range results {
		rows[i] = []any{res.Preset, res.Cylinders, res.Path}
	}
	r.Table([]string{"Preset", "Cylinders", "Path"}, rows)
	r.Println("")
	r.Success(fmt.Sprintf("Exported %d script(s) to %s", len(results), opts.Dir))
	return nil
}

// exportFileName turns a preset name into a script file name.
func exportFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(name), "_") + ".mr"
}
