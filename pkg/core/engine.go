package core

import (
	"fmt"
	"slices"
)

// =============================================================================
// Firing order
// =============================================================================

// FiringOrder is the sequence in which cylinders reach top dead center over
// one 720° four-stroke cycle. A valid order is a permutation of 0..N-1.
type FiringOrder []int

// Validate checks that the order is a permutation of 0..n-1.
func (f FiringOrder) Validate(n int) error {
	if len(f) != n {
		return fmt.Errorf("%w: %d entries for %d cylinders", ErrMalformedFiringOrder, len(f), n)
	}
	seen := make([]bool, n)
	for i, cyl := range f {
		if cyl < 0 || cyl >= n {
			return fmt.Errorf("%w: entry %d is cylinder %d, outside 0..%d", ErrMalformedFiringOrder, i, cyl, n-1)
		}
		if seen[cyl] {
			return fmt.Errorf("%w: cylinder %d fires twice", ErrMalformedFiringOrder, cyl)
		}
		seen[cyl] = true
	}
	return nil
}

// Position returns the 0-based firing position of cyl, or -1.
func (f FiringOrder) Position(cyl int) int {
	return slices.Index(f, cyl)
}

// OneBased returns the order using 1-based cylinder numbers.
func (f FiringOrder) OneBased() []int {
	out := make([]int, len(f))
	for i, c := range f {
		out[i] = c + 1
	}
	return out
}

// =============================================================================
// Banks and camshafts
// =============================================================================

// Bank is a group of cylinders sharing a common angular offset from the
// engine centerline.
type Bank struct {
	// Cylinders lists the bank's cylinder indices in physical order.
	Cylinders []int `json:"cylinders" yaml:"cylinders"`
	// Angle is the signed bank angle in degrees.
	Angle float64 `json:"angle" yaml:"angle"`
	// Flip mirrors the bank in the simulator's display.
	Flip bool `json:"flip,omitempty" yaml:"flip,omitempty"`
}

// IndexOf returns the position of cyl within the bank, or -1.
func (b Bank) IndexOf(cyl int) int {
	return slices.Index(b.Cylinders, cyl)
}

func (b Bank) clone() Bank {
	b.Cylinders = slices.Clone(b.Cylinders)
	return b
}

// Camshaft holds one lobe phase (degrees) per cylinder of its bank, aligned
// by position with Bank.Cylinders.
type Camshaft struct {
	Lobes []float64 `json:"lobes"`
}

// NewCamshaft allocates a camshaft with n zero phases.
func NewCamshaft(n int) Camshaft {
	return Camshaft{Lobes: make([]float64, n)}
}

// =============================================================================
// Engine
// =============================================================================

// EngineConfig is the input to NewEngine.
type EngineConfig struct {
	Banks       []Bank
	FiringOrder FiringOrder
	Params      Params
}

// Engine is a validated engine geometry. It is immutable after
// construction; accessors return copies.
type Engine struct {
	banks       []Bank
	firingOrder FiringOrder
	params      Params
	owner       []int // cylinder -> bank index
}

// NewEngine validates cfg and returns an Engine. Zero parameters are
// replaced by their documented defaults.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if len(cfg.Banks) == 0 {
		return nil, fmt.Errorf("%w: engine has no banks", ErrInvalidCylinderCount)
	}

	n := 0
	for _, b := range cfg.Banks {
		n += len(b.Cylinders)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: engine has no cylinders", ErrInvalidCylinderCount)
	}

	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	banks := make([]Bank, len(cfg.Banks))
	for bi, b := range cfg.Banks {
		for _, cyl := range b.Cylinders {
			if cyl < 0 || cyl >= n {
				return nil, fmt.Errorf("%w: bank %d lists cylinder %d but cylinders must be 0..%d",
					ErrInvalidCylinderCount, bi, cyl, n-1)
			}
			if owner[cyl] != -1 {
				return nil, fmt.Errorf("%w: cylinder %d in banks %d and %d", ErrDuplicateCylinder, cyl, owner[cyl], bi)
			}
			owner[cyl] = bi
		}
		banks[bi] = b.clone()
	}

	// Firing entries past the last bank cylinder belong to no bank.
	for i, cyl := range cfg.FiringOrder {
		if cyl >= n {
			return nil, fmt.Errorf("%w: firing entry %d is cylinder %d, banks hold 0..%d",
				ErrOrphanCylinder, i, cyl, n-1)
		}
	}
	if err := cfg.FiringOrder.Validate(n); err != nil {
		return nil, err
	}

	params := cfg.Params.WithDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		banks:       banks,
		firingOrder: slices.Clone(cfg.FiringOrder),
		params:      params,
		owner:       owner,
	}, nil
}

// CylinderCount returns N.
func (e *Engine) CylinderCount() int {
	return len(e.owner)
}

// Banks returns a copy of the engine's banks.
func (e *Engine) Banks() []Bank {
	out := make([]Bank, len(e.banks))
	for i, b := range e.banks {
		out[i] = b.clone()
	}
	return out
}

// Bank returns a copy of bank i.
func (e *Engine) Bank(i int) Bank {
	return e.banks[i].clone()
}

// BankCount returns the number of banks.
func (e *Engine) BankCount() int {
	return len(e.banks)
}

// FiringOrder returns a copy of the firing order.
func (e *Engine) FiringOrder() FiringOrder {
	return slices.Clone(e.firingOrder)
}

// Params returns the engine's scalar parameters with defaults applied.
func (e *Engine) Params() Params {
	return e.params
}

// BankOf returns the index of the bank owning cyl.
func (e *Engine) BankOf(cyl int) (int, error) {
	if cyl < 0 || cyl >= len(e.owner) || e.owner[cyl] == -1 {
		return -1, fmt.Errorf("%w: cylinder %d", ErrOrphanCylinder, cyl)
	}
	return e.owner[cyl], nil
}

// TDC is the crank angle (degrees) at which the reference bank's piston is
// at top dead center: 90° plus the first bank's angle.
func (e *Engine) TDC() float64 {
	return 90 + e.banks[0].Angle
}

// =============================================================================
// Timing
// =============================================================================

// Timing is the output of the timing solver.
type Timing struct {
	// TDC is the reference top dead center angle in degrees.
	TDC float64 `json:"tdc"`
	// Gap is the firing interval, 720° / N.
	Gap float64 `json:"gap"`
	// RodJournals holds one crank-pin angle per cylinder, indexed by cylinder.
	RodJournals []float64 `json:"rod_journals"`
	// Camshafts holds one camshaft per bank, aligned with Engine.Banks.
	Camshafts []Camshaft `json:"camshafts"`
}
