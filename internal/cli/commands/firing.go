package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/enginegen/internal/cli/output"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
	"github.com/spf13/cobra"
)

// firingOrderResult is the JSON form of a generated plan.
type firingOrderResult struct {
	Cylinders     int     `json:"cylinders"`
	Style         string  `json:"style"`
	TieBreak      string  `json:"tie_break"`
	Order         []int   `json:"order"`
	OrderOneBased []int   `json:"order_one_based"`
	Banks         [][]int `json:"banks"`
}

// NewFiringOrderCommand creates the firing-order command.
func NewFiringOrderCommand() *cobra.Command {
	var (
		cylinders int
		style     string
	)

	cmd := &cobra.Command{
		Use:   "firing-order",
		Short: "Show the generated firing order for a layout",
		Long: `Generate a firing order for the given cylinder count and layout style
and print it with the bank membership it was generated for.

Cylinder numbers are shown 1-based, the way they are stamped on a block;
the 0-based indices are the ones preset files and scripts use.`,
		Example: `  enginegen firing-order -n 6
  enginegen firing-order -n 7 --style v --tie-break left
  enginegen firing-order -n 8 --style v -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			return runFiringOrder(cc, cylinders, style)
		},
	}

	cmd.Flags().IntVarP(&cylinders, "cylinders", "n", 0, "Number of cylinders")
	cmd.Flags().StringVar(&style, "style", "inline", "Layout style (inline|v)")
	_ = cmd.MarkFlagRequired("cylinders")
	_ = cmd.RegisterFlagCompletionFunc("style", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"inline", "v"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runFiringOrder(cc *CommandContext, cylinders int, styleName string) error {
	style, err := core.ParseStyle(styleName)
	if err != nil {
		return err
	}
	plan, err := firing.Generate(cylinders, style, firing.WithTieBreak(cc.Cfg.TieBreak))
	if err != nil {
		return err
	}

	res := firingOrderResult{
		Cylinders:     cylinders,
		Style:         style.String(),
		TieBreak:      cc.Cfg.TieBreak.String(),
		Order:         plan.Order,
		OrderOneBased: plan.Order.OneBased(),
		Banks:         plan.Banks,
	}

	r := cc.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}

	r.Header(1, fmt.Sprintf("Firing Order: %d-cylinder %s", cylinders, style))
	r.KeyValue("Order", joinInts(res.OrderOneBased, "-"))
	r.KeyValue("Indices", joinInts(res.Order, ", "))
	if style == core.StyleV {
		r.KeyValue("Tie-break", res.TieBreak)
	}
	r.Println("")

	r.Header(2, "Banks")
	for i, b := range plan.Banks {
		r.KeyValue(fmt.Sprintf("Bank %d", i), joinInts(core.FiringOrder(b).OneBased(), ", "))
	}
	return nil
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
