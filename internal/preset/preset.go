// Package preset provides named engine layouts: built-ins, YAML preset
// files and Starlark preset scripts.
package preset

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
)

// Preset is a named engine layout with parameter overrides.
type Preset struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Banks       []core.Bank      `json:"banks" yaml:"banks"`
	FiringOrder core.FiringOrder `json:"firing_order" yaml:"firing_order"`
	Params      core.Params      `json:"params" yaml:"params,omitempty"`
}

// Engine validates the preset and builds the engine. Params are overlaid
// on defaults; an empty Params.Name takes the preset name.
func (p *Preset) Engine() (*core.Engine, error) {
	params := p.Params
	if params.Name == "" {
		params.Name = p.Name
	}
	return core.NewEngine(core.EngineConfig{
		Banks:       p.Banks,
		FiringOrder: p.FiringOrder,
		Params:      params,
	})
}

// CylinderCount returns the number of cylinders across all banks.
func (p *Preset) CylinderCount() int {
	n := 0
	for _, b := range p.Banks {
		n += len(b.Cylinders)
	}
	return n
}

// FromPlan builds a preset from a generated firing plan using the given
// bank angles.
func FromPlan(name string, plan *firing.Plan, angles []float64) *Preset {
	return &Preset{
		Name:        name,
		Banks:       plan.CoreBanks(angles...),
		FiringOrder: slices.Clone(plan.Order),
	}
}

var builtins = map[string]func() *Preset{
	"i4":  i4,
	"i6":  i6,
	"v8":  v8,
	"v24": v24,
	"v69": v69,
}

// Names returns the built-in preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of the named built-in preset. Names are
// matched without regard to case.
func Get(name string) (*Preset, bool) {
	fn, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// All returns every built-in preset in name order.
func All() []*Preset {
	out := make([]*Preset, 0, len(builtins))
	for _, name := range Names() {
		out = append(out, builtins[name]())
	}
	return out
}

// LoadError represents an error loading a preset file.
type LoadError struct {
	File    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("preset %s: %s", filepath.Base(e.File), e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func i4() *Preset {
	return &Preset{
		Name:        "I4",
		Description: "Inline four, 1-3-4-2",
		Banks:       []core.Bank{{Cylinders: []int{0, 1, 2, 3}, Angle: 0}},
		FiringOrder: core.FiringOrder{0, 2, 3, 1},
		Params: core.Params{
			StarterTorque: 400,
			ChamberVolume: 70,
		},
	}
}

func i6() *Preset {
	plan, _ := firing.Generate(6, core.StyleInline)
	p := FromPlan("I6", plan, firing.DefaultBankAngles(core.StyleInline))
	p.Description = "Inline six, generated 1-3-5-6-4-2"
	p.Params = core.Params{StarterTorque: 200, ChamberVolume: 80}
	return p
}

func v8() *Preset {
	plan, _ := firing.Generate(8, core.StyleV)
	p := FromPlan("V8", plan, firing.DefaultBankAngles(core.StyleV))
	p.Description = "90 degree V8, alternating banks"
	p.Params = core.Params{StarterTorque: 300, ChamberVolume: 100}
	return p
}

func v24() *Preset {
	var left, right, order []int
	for i := range 12 {
		left = append(left, i*2)
		right = append(right, i*2+1)
		order = append(order, i*2, i*2+1)
	}
	return &Preset{
		Name:        "V24",
		Description: "Two banks of twelve at 90 degrees",
		Banks: []core.Bank{
			{Cylinders: left, Angle: -45},
			{Cylinders: right, Angle: 45},
		},
		FiringOrder: order,
		Params: core.Params{
			StarterTorque: 400,
			CrankMass:     200,
		},
	}
}

func v69() *Preset {
	var left, right, order []int
	for i := range 34 {
		left = append(left, i*2)
		right = append(right, i*2+1)
		order = append(order, i*2, i*2+1)
	}
	left = append(left, 68)
	order = append(order, 68)

	const stroke = 197.9
	return &Preset{
		Name:        "V69",
		Description: "Thirty-five plus thirty-four cylinders, large bore",
		Banks: []core.Bank{
			{Cylinders: left, Angle: -34.5},
			{Cylinders: right, Angle: 34.5, Flip: true},
		},
		FiringOrder: order,
		Params: core.Params{
			StarterTorque:             10000,
			CrankMass:                 2000,
			Bore:                      stroke,
			Stroke:                    stroke,
			ChamberVolume:             3000,
			RodLength:                 stroke * 1.75,
			SimulationFrequency:       1200,
			MaxSLESolverSteps:         4,
			FluidSimulationSteps:      4,
			IdleThrottlePlatePosition: core.Float64(0.9),
		},
	}
}
