// Package firing generates cylinder firing orders for inline and V layouts.
//
// Orders are computed with 1-based cylinder numbers, the way engine
// builders write them, and converted to 0-based indices before they are
// returned. Every generated order is validated as a permutation before it
// leaves the package.
package firing

import (
	"fmt"

	"github.com/leapstack-labs/enginegen/pkg/core"
)

// Plan is a generated firing order together with the bank membership it
// was generated for. All indices are 0-based.
type Plan struct {
	Order core.FiringOrder
	// Banks lists cylinder indices per bank. Inline plans have one bank;
	// V plans have the left bank first.
	Banks [][]int
}

type options struct {
	tieBreak core.TieBreak
}

// Option configures Generate.
type Option func(*options)

// WithTieBreak sets the policy deciding which V bank receives the leftover
// cylinder of an odd count when both banks are the same size.
func WithTieBreak(tb core.TieBreak) Option {
	return func(o *options) {
		o.tieBreak = tb
	}
}

// Generate produces a firing order for count cylinders in the given style.
func Generate(count int, style core.Style, opts ...Option) (*Plan, error) {
	o := options{tieBreak: core.TieBreakRight}
	for _, opt := range opts {
		opt(&o)
	}

	if count < style.MinCylinders() {
		return nil, fmt.Errorf("%w: %s layout needs at least %d cylinders, got %d",
			core.ErrInvalidCylinderCount, style, style.MinCylinders(), count)
	}

	var (
		order []int
		banks [][]int
	)
	switch style {
	case core.StyleInline:
		order = inline(count)
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		banks = [][]int{all}
	case core.StyleV:
		var left, right []int
		order, left, right = vee(count, o.tieBreak)
		banks = [][]int{left, right}
	default:
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidLayoutStyle, style)
	}

	plan := &Plan{Order: FromOneBased(order)}
	for _, b := range banks {
		plan.Banks = append(plan.Banks, FromOneBased(b))
	}
	if err := plan.Order.Validate(count); err != nil {
		return nil, err
	}
	return plan, nil
}

// inline returns the 1-based inline order: odd numbers ascending, then the
// even numbers grown by front-insertion onto the seed 2, e.g. 1-3-2,
// 1-3-4-2, 1-3-5-4-2, 1-3-5-6-4-2.
func inline(count int) []int {
	order := make([]int, 0, count)
	for c := 1; c <= count; c += 2 {
		order = append(order, c)
	}

	evens := []int{2}
	for c := 4; c <= count; c += 2 {
		evens = append([]int{c}, evens...)
	}
	return append(order, evens...)
}

// vee splits 1-based cylinders into a left bank (odd numbers) and a right
// bank (even numbers) and alternates between them. The paired banks are
// always the same size, so with an odd count tb alone decides which bank
// takes the trailing cylinder. It fires last.
func vee(count int, tb core.TieBreak) (order, left, right []int) {
	paired := count - count%2
	for c := 1; c <= paired; c += 2 {
		left = append(left, c)
		right = append(right, c+1)
	}
	for i := range left {
		order = append(order, left[i], right[i])
	}

	if count%2 == 1 {
		if tb == core.TieBreakLeft {
			left = append(left, count)
		} else {
			right = append(right, count)
		}
		order = append(order, count)
	}
	return order, left, right
}

// FromOneBased converts 1-based cylinder numbers to 0-based indices.
func FromOneBased(cylinders []int) core.FiringOrder {
	out := make(core.FiringOrder, len(cylinders))
	for i, c := range cylinders {
		out[i] = c - 1
	}
	return out
}

// CoreBanks converts a plan into core banks using the given bank angles.
// Inline plans use the first angle; V plans use one angle per bank.
func (p *Plan) CoreBanks(angles ...float64) []core.Bank {
	out := make([]core.Bank, len(p.Banks))
	for i, cyls := range p.Banks {
		var angle float64
		if i < len(angles) {
			angle = angles[i]
		}
		out[i] = core.Bank{Cylinders: append([]int(nil), cyls...), Angle: angle}
	}
	return out
}

// DefaultBankAngles returns the bank angles used when the caller gives
// none: 0° for inline, ±45° for V.
func DefaultBankAngles(style core.Style) []float64 {
	if style == core.StyleV {
		return []float64{-45, 45}
	}
	return []float64{0}
}
