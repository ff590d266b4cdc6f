package starlark

import (
	"fmt"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// resultKey is the thread-local slot engine() records its document in.
const resultKey = "enginegen.engine"

// Predeclared returns the globals available to preset scripts:
// bank, generate_firing_order, engine and the defaults struct.
func Predeclared(defaults map[string]any) (starlark.StringDict, error) {
	fields := make(starlark.StringDict, len(defaults))
	for k, v := range defaults {
		sv, err := GoToStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("defaults.%s: %w", k, err)
		}
		fields[k] = sv
	}

	return starlark.StringDict{
		"bank":                  starlark.NewBuiltin("bank", builtinBank),
		"generate_firing_order": starlark.NewBuiltin("generate_firing_order", builtinGenerateFiringOrder),
		"engine":                starlark.NewBuiltin("engine", builtinEngine),
		"defaults":              starlarkstruct.FromStringDict(starlark.String("defaults"), fields),
	}, nil
}

// bank(cylinders, angle=0, flip=False)
func builtinBank(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		cylinders *starlark.List
		angle     starlark.Value = starlark.MakeInt(0)
		flip      bool
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cylinders", &cylinders, "angle?", &angle, "flip?", &flip); err != nil {
		return nil, err
	}

	deg, ok := starlark.AsFloat(angle)
	if !ok {
		return nil, fmt.Errorf("%s: angle must be a number, got %s", b.Name(), angle.Type())
	}
	for i := 0; i < cylinders.Len(); i++ {
		if _, ok := cylinders.Index(i).(starlark.Int); !ok {
			return nil, fmt.Errorf("%s: cylinders[%d] must be an int, got %s", b.Name(), i, cylinders.Index(i).Type())
		}
	}

	return starlarkstruct.FromStringDict(starlark.String("bank"), starlark.StringDict{
		"cylinders": cylinders,
		"angle":     starlark.Float(deg),
		"flip":      starlark.Bool(flip),
	}), nil
}

// generate_firing_order(count, style="inline", tie_break="right")
func builtinGenerateFiringOrder(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		count     int
		styleName = "inline"
		tieName   = "right"
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "count", &count, "style?", &styleName, "tie_break?", &tieName); err != nil {
		return nil, err
	}

	style, err := core.ParseStyle(styleName)
	if err != nil {
		return nil, err
	}
	tb, err := core.ParseTieBreak(tieName)
	if err != nil {
		return nil, err
	}
	plan, err := firing.Generate(count, style, firing.WithTieBreak(tb))
	if err != nil {
		return nil, err
	}

	order, err := GoToStarlark([]int(plan.Order))
	if err != nil {
		return nil, err
	}
	banks := make([]starlark.Value, len(plan.Banks))
	for i, cyls := range plan.Banks {
		if banks[i], err = GoToStarlark(cyls); err != nil {
			return nil, err
		}
	}

	return starlarkstruct.FromStringDict(starlark.String("firing_plan"), starlark.StringDict{
		"order": order,
		"banks": starlark.NewList(banks),
	}), nil
}

// engine(name, banks, firing_order, params={}, description="", one_based=False)
func builtinEngine(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if thread.Local(resultKey) != nil {
		return nil, fmt.Errorf("%s: called more than once", b.Name())
	}

	var (
		name        string
		banks       *starlark.List
		order       *starlark.List
		params      = starlark.NewDict(0)
		description string
		oneBased    bool
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"name", &name,
		"banks", &banks,
		"firing_order", &order,
		"params?", &params,
		"description?", &description,
		"one_based?", &oneBased,
	); err != nil {
		return nil, err
	}

	doc := map[string]any{
		"name":        name,
		"description": description,
		"one_based":   oneBased,
	}
	for key, v := range map[string]starlark.Value{"banks": banks, "firing_order": order, "params": params} {
		gv, err := ToGo(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", b.Name(), key, err)
		}
		doc[key] = gv
	}

	thread.SetLocal(resultKey, doc)
	return starlark.None, nil
}

// Defaults flattens core.DefaultParams into the map exposed as `defaults`.
func Defaults() map[string]any {
	p := core.DefaultParams()
	return map[string]any{
		"name":                         p.Name,
		"starter_torque":               p.StarterTorque,
		"starter_speed":                p.StarterSpeed,
		"redline":                      p.Redline,
		"throttle_gamma":               p.ThrottleGamma,
		"stroke":                       p.Stroke,
		"bore":                         p.Bore,
		"rod_length":                   p.RodLength,
		"rod_mass":                     p.RodMass,
		"compression_height":           p.CompressionHeight,
		"crank_mass":                   p.CrankMass,
		"flywheel_mass":                p.FlywheelMass,
		"flywheel_radius":              p.FlywheelRadius,
		"piston_mass":                  p.PistonMass,
		"chamber_volume":               p.ChamberVolume,
		"simulation_frequency":         p.SimulationFrequency,
		"max_sle_solver_steps":         p.MaxSLESolverSteps,
		"fluid_simulation_steps":       p.FluidSimulationSteps,
		"idle_throttle_plate_position": p.IdleThrottle(),
		"sim_version":                  p.SimVersion,
	}
}
