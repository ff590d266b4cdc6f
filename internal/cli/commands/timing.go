package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/format"
	"github.com/leapstack-labs/enginegen/pkg/timing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cylinderTiming is one row of the timing table.
type cylinderTiming struct {
	Cylinder       int     `json:"cylinder"`
	Bank           int     `json:"bank"`
	FiringPosition int     `json:"firing_position"`
	RodJournal     float64 `json:"rod_journal"`
	Lobe           float64 `json:"lobe"`
	IgnitionOffset float64 `json:"ignition_offset"`
}

// timingResult is the JSON form of a solved engine.
type timingResult struct {
	Name      string           `json:"name"`
	TDC       float64          `json:"tdc"`
	Gap       float64          `json:"gap"`
	Cylinders []cylinderTiming `json:"cylinders"`
}

// NewTimingCommand creates the timing command.
func NewTimingCommand() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "timing",
		Short: "Show crank and camshaft timing for an engine",
		Long: `Solve the timing of an engine and print, per cylinder, its bank, firing
position, rod journal angle, camshaft lobe phase and ignition offset.

All angles are in degrees. Cylinder numbers are 0-based indices.`,
		Example: `  enginegen timing --preset v8
  enginegen timing -n 5 --style v -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runTiming(cmd.Context(), cmd.Flags(), cc, &src)
		},
	}
	src.register(cmd)

	return cmd
}

func runTiming(ctx context.Context, flags *pflag.FlagSet, cc *CommandContext, src *sourceFlags) error {
	e, err := src.engine(ctx, flags, cc.Cfg, cc.Logger)
	if err != nil {
		return err
	}
	t, err := timing.Solve(e)
	if err != nil {
		return err
	}

	res := buildTimingResult(e, t)
	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}

	r.Header(1, "Timing: "+res.Name)
	r.KeyValue("TDC", format.Number(res.TDC)+"°")
	r.KeyValue("Firing interval", format.Number(res.Gap)+"°")
	r.Println("")

	rows := make([][]any, len(res.Cylinders))
	for i, c := range res.Cylinders {
		rows[i] = []any{
			c.Cylinder, c.Bank, c.FiringPosition,
			format.Number(c.RodJournal), format.Number(c.Lobe), format.Number(c.IgnitionOffset),
		}
	}
	r.Table([]string{"Cylinder", "Bank", "Position", "Rod journal", "Lobe", "Ignition"}, rows)
	return nil
}

func buildTimingResult(e *core.Engine, t *core.Timing) timingResult {
	n := e.CylinderCount()
	order := e.FiringOrder()
	banks := e.Banks()

	res := timingResult{
		Name:      e.Params().Name,
		TDC:       t.TDC,
		Gap:       t.Gap,
		Cylinders: make([]cylinderTiming, n),
	}
	for cyl := range n {
		bi, _ := e.BankOf(cyl)
		pos := order.Position(cyl)
		res.Cylinders[cyl] = cylinderTiming{
			Cylinder:       cyl,
			Bank:           bi,
			FiringPosition: pos,
			RodJournal:     t.RodJournals[cyl],
			Lobe:           t.Camshafts[bi].Lobes[banks[bi].IndexOf(cyl)],
			IgnitionOffset: timing.IgnitionOffset(pos, n),
		}
	}
	return res
}

// describeEngine is the one-line summary used by watch and prompt.
func describeEngine(e *core.Engine) string {
	return fmt.Sprintf("%s: %d cylinders in %d bank(s)", e.Params().Name, e.CylinderCount(), e.BankCount())
}
