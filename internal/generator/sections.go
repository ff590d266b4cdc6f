package generator

import (
	"fmt"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/dsl"
	"github.com/leapstack-labs/enginegen/pkg/timing"
)

// builder carries the state of one Build call.
type builder struct {
	gen         *Generator
	engine      *core.Engine
	timing      *core.Timing
	params      core.Params
	solverSteps bool
}

func (b *builder) file() *dsl.File {
	stmts := []dsl.Stmt{
		&dsl.Import{Path: "engine_sim.mr"},
		&dsl.Blank{},
		&dsl.Instance{Type: "units", Name: "units"},
		&dsl.Instance{Type: "constants", Name: "constants"},
		&dsl.Instance{Type: "impulse_response_library", Name: "ir_lib"},
		&dsl.Blank{},
		b.wires(),
		&dsl.Blank{},
		b.head(),
		&dsl.Blank{},
		b.camshaft(),
		&dsl.Blank{},
		b.engineNode(),
		&dsl.Blank{},
		b.vehicle(),
		&dsl.Blank{},
		b.transmission(),
		&dsl.Blank{},
		mainNode(),
		&dsl.Blank{},
		&dsl.CallStmt{Call: dsl.Call("main")},
	}
	return &dsl.File{Stmts: stmts}
}

func (b *builder) wires() *dsl.NodeDecl {
	n := dsl.NewNode(false, "wires")
	for cyl := range b.engine.CylinderCount() {
		n.Body = append(n.Body, &dsl.Output{
			Name:  fmt.Sprintf("wire%d", cyl),
			Value: dsl.Call("ignition_wire"),
		})
	}
	return n
}

// =============================================================================
// Cylinder head
// =============================================================================

var (
	intakeFlowSamples  = [][2]float64{{0, 0}, {50, 58}, {100, 103}, {150, 156}, {200, 214}, {250, 249}, {300, 268}, {350, 280}, {400, 280}, {450, 281}}
	exhaustFlowSamples = [][2]float64{{0, 0}, {50, 37}, {100, 72}, {150, 113}, {200, 160}, {250, 196}, {300, 222}, {350, 235}, {400, 245}, {450, 246}}
)

func runnerArea() dsl.Expr {
	return dsl.Op(dsl.Q(1.75, "inch"), "*", dsl.Q(1.75, "inch"))
}

func flowFunction(name string, samples [][2]float64) []dsl.Stmt {
	chain := &dsl.Chain{Target: name}
	for _, s := range samples {
		chain.Calls = append(chain.Calls, dsl.Call("add_flow_sample",
			dsl.Pos(dsl.Op(dsl.N(s[0]), "*", dsl.Id("lift_scale"))),
			dsl.Pos(dsl.Op(dsl.N(s[1]), "*", dsl.Id("flow_attenuation"))),
		))
	}
	return []dsl.Stmt{
		&dsl.Instance{Type: "function", Name: name, Args: []dsl.Arg{dsl.Pos(dsl.Q(50, "thou"))}},
		chain,
	}
}

func (b *builder) head() *dsl.NodeDecl {
	n := dsl.NewNode(false, "generated_head",
		&dsl.Input{Name: "intake_camshaft"},
		&dsl.Input{Name: "exhaust_camshaft"},
		&dsl.Input{Name: "chamber_volume", Default: dsl.Q(b.params.ChamberVolume, "cc")},
		&dsl.Input{Name: "intake_runner_volume", Default: dsl.Q(149.6, "cc")},
		&dsl.Input{Name: "intake_runner_cross_section_area", Default: runnerArea()},
		&dsl.Input{Name: "exhaust_runner_volume", Default: dsl.Q(50.0, "cc")},
		&dsl.Input{Name: "exhaust_runner_cross_section_area", Default: runnerArea()},
		&dsl.Blank{},
		&dsl.Input{Name: "flow_attenuation", Default: dsl.N(1.0)},
		&dsl.Input{Name: "lift_scale", Default: dsl.N(1.0)},
		&dsl.Input{Name: "flip_display", Default: dsl.B(false)},
		&dsl.Output{Name: "__out", Value: dsl.Id("head"), Alias: true},
		&dsl.Blank{},
	)
	n.Body = append(n.Body, flowFunction("intake_flow", intakeFlowSamples)...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, flowFunction("exhaust_flow", exhaustFlowSamples)...)
	n.Body = append(n.Body,
		&dsl.Blank{},
		&dsl.Instance{Type: "generic_cylinder_head", Name: "head", Multiline: true, Args: []dsl.Arg{
			dsl.Named("chamber_volume", dsl.Id("chamber_volume")),
			dsl.Named("intake_runner_volume", dsl.Id("intake_runner_volume")),
			dsl.Named("intake_runner_cross_section_area", dsl.Id("intake_runner_cross_section_area")),
			dsl.Named("exhaust_runner_volume", dsl.Id("exhaust_runner_volume")),
			dsl.Named("exhaust_runner_cross_section_area", dsl.Id("exhaust_runner_cross_section_area")),
			dsl.Named("intake_port_flow", dsl.Id("intake_flow")),
			dsl.Named("exhaust_port_flow", dsl.Id("exhaust_flow")),
			dsl.Named("valvetrain", dsl.Block("standard_valvetrain",
				dsl.Named("intake_camshaft", dsl.Id("intake_camshaft")),
				dsl.Named("exhaust_camshaft", dsl.Id("exhaust_camshaft")),
			)),
			dsl.Named("flip_display", dsl.Id("flip_display")),
		}},
	)
	return n
}

// =============================================================================
// Camshaft
// =============================================================================

func (b *builder) camshaft() *dsl.NodeDecl {
	n := dsl.NewNode(false, "generated_camshaft",
		&dsl.Input{Name: "lobe_profile"},
		&dsl.Input{Name: "intake_lobe_profile", Default: dsl.Id("lobe_profile")},
		&dsl.Input{Name: "exhaust_lobe_profile", Default: dsl.Id("lobe_profile")},
		&dsl.Input{Name: "lobe_separation", Default: dsl.Q(114, "deg")},
		&dsl.Input{Name: "intake_lobe_center", Default: dsl.Id("lobe_separation")},
		&dsl.Input{Name: "exhaust_lobe_center", Default: dsl.Id("lobe_separation")},
		&dsl.Input{Name: "advance", Default: dsl.Q(0, "deg")},
		&dsl.Input{Name: "base_radius", Default: dsl.Q(0.5, "inch")},
		&dsl.Blank{},
	)

	banks := b.engine.BankCount()
	for i := range banks {
		n.Body = append(n.Body,
			&dsl.Output{Name: fmt.Sprintf("intake_cam_%d", i), Value: dsl.Id(fmt.Sprintf("_intake_cam_%d", i))},
			&dsl.Output{Name: fmt.Sprintf("exhaust_cam_%d", i), Value: dsl.Id(fmt.Sprintf("_exhaust_cam_%d", i))},
		)
	}

	n.Body = append(n.Body,
		&dsl.Blank{},
		&dsl.Instance{Type: "camshaft_parameters", Name: "params", Multiline: true, Args: []dsl.Arg{
			dsl.Named("advance", dsl.Id("advance")),
			dsl.Named("base_radius", dsl.Id("base_radius")),
		}},
		&dsl.Blank{},
	)
	for i := range banks {
		n.Body = append(n.Body,
			&dsl.Instance{Type: "camshaft", Name: fmt.Sprintf("_intake_cam_%d", i), Args: []dsl.Arg{
				dsl.Pos(dsl.Id("params")),
				dsl.Named("lobe_profile", dsl.Id("intake_lobe_profile")),
			}},
			&dsl.Instance{Type: "camshaft", Name: fmt.Sprintf("_exhaust_cam_%d", i), Args: []dsl.Arg{
				dsl.Pos(dsl.Id("params")),
				dsl.Named("lobe_profile", dsl.Id("exhaust_lobe_profile")),
			}},
		)
	}

	n.Body = append(n.Body, &dsl.Blank{}, dsl.Label("rot360", dsl.Q(360, "deg")))
	for i, cam := range b.timing.Camshafts {
		if len(cam.Lobes) == 0 {
			continue
		}
		exhaust := &dsl.Chain{Target: fmt.Sprintf("_exhaust_cam_%d", i)}
		intake := &dsl.Chain{Target: fmt.Sprintf("_intake_cam_%d", i)}
		for _, lobe := range cam.Lobes {
			exhaust.Calls = append(exhaust.Calls, dsl.Call("add_lobe", dsl.Pos(
				dsl.Op(dsl.Op(dsl.Id("rot360"), "-", dsl.Id("exhaust_lobe_center")), "+", dsl.Q(lobe, "deg")),
			)))
			intake.Calls = append(intake.Calls, dsl.Call("add_lobe", dsl.Pos(
				dsl.Op(dsl.Op(dsl.Id("rot360"), "+", dsl.Id("intake_lobe_center")), "+", dsl.Q(lobe, "deg")),
			)))
		}
		n.Body = append(n.Body, exhaust, intake)
	}
	return n
}

// =============================================================================
// Engine
// =============================================================================

func (b *builder) engineNode() *dsl.NodeDecl {
	n := dsl.NewNode(true, "generated_engine",
		&dsl.Output{Name: "__out", Value: dsl.Id("engine"), Alias: true},
		&dsl.Blank{},
		b.engineInstance(),
		&dsl.Blank{},
		&dsl.Instance{Type: "wires", Name: "wires"},
		&dsl.Blank{},
	)
	n.Body = append(n.Body, b.geometry()...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, b.crankshaft()...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, b.componentParameters()...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, b.cylinderBanks()...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, b.lobes()...)
	n.Body = append(n.Body, &dsl.Blank{})
	n.Body = append(n.Body, b.ignition()...)
	return n
}

func (b *builder) engineInstance() *dsl.Instance {
	p := b.params
	f := b.gen.fuel
	args := []dsl.Arg{
		dsl.Named("name", dsl.Str(p.Name)),
		dsl.Named("starter_torque", dsl.Q(p.StarterTorque, "lb_ft")),
		dsl.Named("starter_speed", dsl.Q(p.StarterSpeed, "rpm")),
		dsl.Named("redline", dsl.Q(p.Redline, "rpm")),
		dsl.Named("throttle_gamma", dsl.N(p.ThrottleGamma)),
		dsl.Named("fuel", dsl.Block("fuel",
			dsl.Named("name", dsl.Str(f.Name)),
			dsl.Named("molecular_mass", dsl.Q(f.MolecularMass, "g")),
			dsl.Named("energy_density", dsl.Op(dsl.Q(f.EnergyDensity, "kJ"), "/", dsl.Id("units.g"))),
			dsl.Named("density", dsl.Op(dsl.Q(f.Density, "kg"), "/", dsl.Id("units.L"))),
			dsl.Named("molecular_afr", dsl.N(f.MolecularAFR)),
			dsl.Named("max_burning_efficiency", dsl.N(f.MaxBurningEfficiency)),
			dsl.Named("burning_efficiency_randomness", dsl.N(f.BurningEfficiencyRandomness)),
			dsl.Named("low_efficiency_attenuation", dsl.N(f.LowEfficiencyAttenuation)),
			dsl.Named("max_turbulence_effect", dsl.N(f.MaxTurbulenceEffect)),
			dsl.Named("max_dilution_effect", dsl.N(f.MaxDilutionEffect)),
		)),
		dsl.Named("hf_gain", dsl.N(0.01)),
		dsl.Named("noise", dsl.N(1.0)),
		dsl.Named("jitter", dsl.N(0.1)),
		dsl.Named("simulation_frequency", dsl.N(float64(p.SimulationFrequency))),
	}
	if b.solverSteps {
		args = append(args,
			dsl.Named("fluid_simulation_steps", dsl.N(float64(p.FluidSimulationSteps))),
			dsl.Named("max_sle_solver_steps", dsl.N(float64(p.MaxSLESolverSteps))),
		)
	}
	return &dsl.Instance{Type: "engine", Name: "engine", Args: args, Multiline: true}
}

func momentLabel(name string, mass, radius dsl.Expr) *dsl.Instance {
	return &dsl.Instance{Type: "label", Name: name, Multiline: true, Args: []dsl.Arg{
		dsl.Pos(dsl.Call("disk_moment_of_inertia", dsl.Named("mass", mass), dsl.Named("radius", radius))),
	}}
}

func (b *builder) geometry() []dsl.Stmt {
	p := b.params
	return []dsl.Stmt{
		dsl.Label("stroke", dsl.Q(p.Stroke, "mm")),
		dsl.Label("bore", dsl.Q(p.Bore, "mm")),
		dsl.Label("rod_length", dsl.Q(p.RodLength, "mm")),
		dsl.Label("rod_mass", dsl.Q(p.RodMass, "g")),
		dsl.Label("compression_height", dsl.Q(p.CompressionHeight, "mm")),
		dsl.Label("crank_mass", dsl.Q(p.CrankMass, "kg")),
		dsl.Label("flywheel_mass", dsl.Q(p.FlywheelMass, "kg")),
		dsl.Label("flywheel_radius", dsl.Q(p.FlywheelRadius, "mm")),
		&dsl.Blank{},
		momentLabel("crank_moment", dsl.Id("crank_mass"), dsl.Id("stroke")),
		momentLabel("flywheel_moment", dsl.Id("flywheel_mass"), dsl.Id("flywheel_radius")),
		&dsl.Comment{Text: "Moment from cams, pulleys, etc [estimated]"},
		momentLabel("other_moment", dsl.Q(1, "kg"), dsl.Q(1.0, "cm")),
	}
}

func (b *builder) crankshaft() []dsl.Stmt {
	stmts := []dsl.Stmt{
		&dsl.Instance{Type: "crankshaft", Name: "c0", Multiline: true, Args: []dsl.Arg{
			dsl.Named("throw", dsl.Op(dsl.Id("stroke"), "/", dsl.N(2))),
			dsl.Named("flywheel_mass", dsl.Id("flywheel_mass")),
			dsl.Named("mass", dsl.Id("crank_mass")),
			dsl.Named("friction_torque", dsl.Q(1.0, "lb_ft")),
			dsl.Named("moment_of_inertia", dsl.Op(dsl.Op(dsl.Id("crank_moment"), "+", dsl.Id("flywheel_moment")), "+", dsl.Id("other_moment"))),
			dsl.Named("position_x", dsl.N(0)),
			dsl.Named("position_y", dsl.N(0)),
			dsl.Named("tdc", dsl.Q(b.timing.TDC, "deg")),
		}},
		&dsl.Blank{},
	}

	chain := &dsl.Chain{Target: "c0"}
	for cyl, angle := range b.timing.RodJournals {
		name := fmt.Sprintf("rj%d", cyl)
		stmts = append(stmts, &dsl.Instance{Type: "rod_journal", Name: name, Args: []dsl.Arg{
			dsl.Named("angle", dsl.Q(angle, "deg")),
		}})
		chain.Calls = append(chain.Calls, dsl.Call("add_rod_journal", dsl.Pos(dsl.Id(name))))
	}
	return append(stmts, chain)
}

func kCarb(v float64) dsl.Expr {
	return dsl.Call("k_carb", dsl.Pos(dsl.N(v)))
}

func (b *builder) componentParameters() []dsl.Stmt {
	p := b.params
	stmts := []dsl.Stmt{
		&dsl.Instance{Type: "piston_parameters", Name: "piston_params", Multiline: true, Args: []dsl.Arg{
			dsl.Named("mass", dsl.Q(p.PistonMass, "g")),
			dsl.Named("compression_height", dsl.Id("compression_height")),
			dsl.Named("wrist_pin_position", dsl.N(0)),
			dsl.Named("displacement", dsl.N(0)),
		}},
		&dsl.Blank{},
		&dsl.Instance{Type: "connecting_rod_parameters", Name: "cr_params", Multiline: true, Args: []dsl.Arg{
			dsl.Named("mass", dsl.Id("rod_mass")),
			dsl.Named("moment_of_inertia", dsl.Block("rod_moment_of_inertia",
				dsl.Named("mass", dsl.Id("rod_mass")),
				dsl.Named("length", dsl.Id("rod_length")),
			)),
			dsl.Named("center_of_mass", dsl.N(0)),
			dsl.Named("length", dsl.Id("rod_length")),
		}},
		&dsl.Blank{},
		&dsl.Instance{Type: "intake", Name: "intake", Multiline: true, Args: []dsl.Arg{
			dsl.Named("plenum_volume", dsl.Q(1.325, "L")),
			dsl.Named("plenum_cross_section_area", dsl.Q(20.0, "cm2")),
			dsl.Named("intake_flow_rate", kCarb(3000)),
			dsl.Named("runner_flow_rate", kCarb(400)),
			dsl.Named("runner_length", dsl.Q(16.0, "inch")),
			dsl.Named("idle_flow_rate", kCarb(0)),
			dsl.Named("idle_throttle_plate_position", dsl.N(p.IdleThrottle())),
			dsl.Named("velocity_decay", dsl.N(0.5)),
		}},
		&dsl.Blank{},
		&dsl.Instance{Type: "exhaust_system_parameters", Name: "es_params", Multiline: true, Args: []dsl.Arg{
			dsl.Named("outlet_flow_rate", kCarb(2000)),
			dsl.Named("primary_tube_length", dsl.Q(20.0, "inch")),
			dsl.Named("primary_flow_rate", kCarb(200)),
			dsl.Named("velocity_decay", dsl.N(0.5)),
		}},
	}
	for i := range b.engine.BankCount() {
		stmts = append(stmts,
			&dsl.Blank{},
			&dsl.Instance{Type: "exhaust_system", Name: fmt.Sprintf("exhaust%d", i), Multiline: true, Args: []dsl.Arg{
				dsl.Pos(dsl.Id("es_params")),
				dsl.Named("audio_volume", dsl.Op(dsl.N(1.0), "*", dsl.N(0.004))),
				dsl.Named("length", dsl.Q(20, "inch")),
				dsl.Named("impulse_response", dsl.Id("ir_lib.minimal_muffling_01")),
			}},
		)
	}
	return stmts
}

func (b *builder) cylinderBanks() []dsl.Stmt {
	stmts := []dsl.Stmt{
		&dsl.Instance{Type: "cylinder_bank_parameters", Name: "bank_params", Multiline: true, Args: []dsl.Arg{
			dsl.Named("bore", dsl.Id("bore")),
			dsl.Named("deck_height", dsl.Op(dsl.Op(dsl.Op(dsl.Id("stroke"), "/", dsl.N(2)), "+", dsl.Id("rod_length")), "+", dsl.Id("compression_height"))),
		}},
		&dsl.Blank{},
		dsl.Label("spacing", dsl.N(0)),
	}

	banks := b.engine.Banks()
	for i, bank := range banks {
		stmts = append(stmts, &dsl.Instance{Type: "cylinder_bank", Name: fmt.Sprintf("b%d", i), Args: []dsl.Arg{
			dsl.Pos(dsl.Id("bank_params")),
			dsl.Named("angle", dsl.Q(bank.Angle, "deg")),
		}})
	}

	for i, bank := range banks {
		chain := &dsl.Chain{Target: fmt.Sprintf("b%d", i)}
		for pos, cyl := range bank.Cylinders {
			chain.Calls = append(chain.Calls, dsl.Block("add_cylinder",
				dsl.Named("piston", dsl.Call("piston",
					dsl.Pos(dsl.Id("piston_params")),
					dsl.Named("blowby", dsl.Call("k_28inH2O", dsl.Pos(dsl.N(0)))),
				)),
				dsl.Named("connecting_rod", dsl.Call("connecting_rod", dsl.Pos(dsl.Id("cr_params")))),
				dsl.Named("rod_journal", dsl.Id(fmt.Sprintf("rj%d", cyl))),
				dsl.Named("intake", dsl.Id("intake")),
				dsl.Named("exhaust_system", dsl.Id(fmt.Sprintf("exhaust%d", i))),
				dsl.Named("ignition_wire", dsl.Id(wireName(cyl))),
				dsl.Named("sound_attenuation", dsl.N(b.gen.soundAttenuation())),
				dsl.Named("primary_length", dsl.Op(dsl.Op(dsl.N(float64(pos)), "*", dsl.Id("spacing")), "*", dsl.Q(0.5, "cm"))),
			))
		}
		chain.Calls = append(chain.Calls, dsl.Block("set_cylinder_head",
			dsl.Pos(dsl.Block("generated_head",
				dsl.Named("intake_camshaft", dsl.Id(fmt.Sprintf("camshaft.intake_cam_%d", i))),
				dsl.Named("exhaust_camshaft", dsl.Id(fmt.Sprintf("camshaft.exhaust_cam_%d", i))),
				dsl.Named("flip_display", dsl.B(bank.Flip)),
				dsl.Named("flow_attenuation", dsl.N(1.0)),
			)),
		))
		stmts = append(stmts, &dsl.Blank{}, chain)
	}

	engineChain := &dsl.Chain{Target: "engine"}
	for i := range banks {
		engineChain.Calls = append(engineChain.Calls, dsl.Call("add_cylinder_bank", dsl.Pos(dsl.Id(fmt.Sprintf("b%d", i)))))
	}
	return append(stmts,
		&dsl.Blank{},
		engineChain,
		&dsl.Blank{},
		&dsl.Chain{Target: "engine", Inline: true, Calls: []*dsl.CallExpr{
			dsl.Call("add_crankshaft", dsl.Pos(dsl.Id("c0"))),
		}},
	)
}

func harmonicLobe(name string, duration, gamma, lift float64) *dsl.Instance {
	return &dsl.Instance{Type: "harmonic_cam_lobe", Name: name, Multiline: true, Args: []dsl.Arg{
		dsl.Named("duration_at_50_thou", dsl.Q(duration, "deg")),
		dsl.Named("gamma", dsl.N(gamma)),
		dsl.Named("lift", dsl.Q(lift, "thou")),
		dsl.Named("steps", dsl.N(512)),
	}}
}

func (b *builder) lobes() []dsl.Stmt {
	p := b.params
	return []dsl.Stmt{
		harmonicLobe("intake_lobe", p.IntakeLobeDuration, p.IntakeLobeGamma, p.IntakeLobeLift),
		&dsl.Blank{},
		harmonicLobe("exhaust_lobe", p.ExhaustLobeDuration, p.ExhaustLobeGamma, p.ExhaustLobeLift),
		&dsl.Blank{},
		&dsl.Instance{Type: "generated_camshaft", Name: "camshaft", Multiline: true, Args: []dsl.Arg{
			dsl.Named("lobe_profile", dsl.Str("N/A")),
			dsl.Named("intake_lobe_profile", dsl.Id("intake_lobe")),
			dsl.Named("exhaust_lobe_profile", dsl.Id("exhaust_lobe")),
			dsl.Named("intake_lobe_center", dsl.Q(p.IntakeLobeCenter, "deg")),
			dsl.Named("exhaust_lobe_center", dsl.Q(p.ExhaustLobeCenter, "deg")),
			dsl.Named("base_radius", dsl.Q(1.0, "inch")),
		}},
	}
}

func (b *builder) ignition() []dsl.Stmt {
	ign := b.gen.ignition
	curve := &dsl.Chain{Target: "timing_curve"}
	for _, s := range ign.TimingCurve {
		curve.Calls = append(curve.Calls, dsl.Call("add_sample",
			dsl.Pos(dsl.Q(s.RPM, "rpm")),
			dsl.Pos(dsl.Q(s.Advance, "deg")),
		))
	}

	order := b.engine.FiringOrder()
	wires := &dsl.Chain{Target: "ignition_module"}
	for pos, cyl := range order {
		wires.Calls = append(wires.Calls, dsl.Call("connect_wire",
			dsl.Pos(dsl.Id(wireName(cyl))),
			dsl.Pos(dsl.Q(timing.IgnitionOffset(pos, len(order)), "deg")),
		))
	}

	return []dsl.Stmt{
		&dsl.Instance{Type: "function", Name: "timing_curve", Args: []dsl.Arg{
			dsl.Pos(dsl.Q(ign.CurveReference, "rpm")),
		}},
		curve,
		&dsl.Blank{},
		&dsl.Instance{Type: "ignition_module", Name: "ignition_module", Multiline: true, Args: []dsl.Arg{
			dsl.Named("timing_curve", dsl.Id("timing_curve")),
			dsl.Named("rev_limit", dsl.Q(b.params.RevLimit, "rpm")),
			dsl.Named("limiter_duration", dsl.N(ign.LimiterDuration)),
		}},
		&dsl.Blank{},
		wires,
		&dsl.Blank{},
		&dsl.Chain{Target: "engine", Inline: true, Calls: []*dsl.CallExpr{
			dsl.Call("add_ignition_module", dsl.Pos(dsl.Id("ignition_module"))),
		}},
	}
}

// =============================================================================
// Vehicle, transmission, main
// =============================================================================

func (b *builder) vehicle() *dsl.NodeDecl {
	v := b.gen.vehicle
	return dsl.NewNode(false, "generated_vehicle",
		&dsl.Output{Name: "__out", Alias: true, Value: dsl.Block("vehicle",
			dsl.Named("mass", dsl.Q(v.Mass, "kg")),
			dsl.Named("drag_coefficient", dsl.N(v.DragCoefficient)),
			dsl.Named("cross_sectional_area", dsl.Op(
				&dsl.Paren{X: dsl.Q(v.FrontalWidth, "inch")}, "*", &dsl.Paren{X: dsl.Q(v.FrontalHeight, "inch")})),
			dsl.Named("diff_ratio", dsl.N(v.DiffRatio)),
			dsl.Named("tire_radius", dsl.Q(v.TireRadius, "inch")),
			dsl.Named("rolling_resistance", dsl.Q(v.RollingResistance, "N")),
		)},
	)
}

func (b *builder) transmission() *dsl.NodeDecl {
	t := b.gen.transmission
	chain := &dsl.MethodChain{
		Recv: dsl.Call("transmission", dsl.Named("max_clutch_torque", dsl.Q(t.MaxClutchTorque, "lb_ft"))),
	}
	for _, g := range t.Gears {
		chain.Calls = append(chain.Calls, dsl.Call("add_gear", dsl.Pos(dsl.N(g))))
	}
	return dsl.NewNode(false, "generated_transmission",
		&dsl.Output{Name: "__out", Alias: true, Value: chain},
	)
}

func mainNode() *dsl.NodeDecl {
	return dsl.NewNode(true, "main",
		&dsl.CallStmt{Call: dsl.Block("run",
			dsl.Named("engine", dsl.Call("generated_engine")),
			dsl.Named("vehicle", dsl.Call("generated_vehicle")),
			dsl.Named("transmission", dsl.Call("generated_transmission")),
		)},
	)
}
