package commands

import (
	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/pkg/format"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/spf13/cobra"
)

// NewFuelsCommand creates the fuels command.
func NewFuelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fuels",
		Short: "List fuel types and their properties",
		Long: `List the fuel types accepted by --fuel and the fuel setting, with the
combustion properties written into the engine's fuel block.

Units: molecular mass g/mol, energy density kJ/g, density kg/L.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runFuels(cc.Renderer)
		},
	}
}

func runFuels(r *output.Renderer) error {
	all := fuel.All()
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(all)
	}

	r.Header(1, "Fuels")
	rows := make([][]any, len(all))
	for i, f := range all {
		rows[i] = []any{
			f.Name,
			format.Number(f.MolecularMass),
			format.Number(f.EnergyDensity),
			format.Number(f.Density),
			format.Number(f.MolecularAFR),
			format.Number(f.MaxBurningEfficiency),
		}
	}
	r.Table([]string{"Name", "Molecular mass", "Energy density", "Density", "Molecular AFR", "Max efficiency"}, rows)
	return nil
}
