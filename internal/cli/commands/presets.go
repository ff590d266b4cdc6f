package commands

import (
	"strings"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/internal/preset"
	"github.com/spf13/cobra"
)

// presetInfo is the JSON form of a preset listing entry.
type presetInfo struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cylinders   int       `json:"cylinders"`
	BankAngles  []float64 `json:"bank_angles"`
	FiringOrder []int     `json:"firing_order"`
}

// NewPresetsCommand creates the presets command.
func NewPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "presets",
		Aliases: []string{"list"},
		Short:   "List built-in engine presets",
		Long: `List the built-in engine presets that can be passed to --preset.

Preset files (.yaml, .yml, .star) can be used anywhere a preset name is
accepted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runPresets(cc.Renderer)
		},
	}
}

func runPresets(r *output.Renderer) error {
	all := preset.All()
	infos := make([]presetInfo, len(all))
	for i, p := range all {
		angles := make([]float64, len(p.Banks))
		for j, b := range p.Banks {
			angles[j] = b.Angle
		}
		infos[i] = presetInfo{
			Name:        p.Name,
			Description: p.Description,
			Cylinders:   p.CylinderCount(),
			BankAngles:  angles,
			FiringOrder: p.FiringOrder.OneBased(),
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	r.Header(1, "Presets")
	rows := make([][]any, len(infos))
	for i, p := range infos {
		rows[i] = []any{p.Name, p.Cylinders, len(p.BankAngles), truncateOneLine(p.Description, 48)}
	}
	r.Table([]string{"Name", "Cylinders", "Banks", "Description"}, rows)
	return nil
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
