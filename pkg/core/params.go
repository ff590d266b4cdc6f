package core

import (
	"fmt"
	"strings"
)

// DefaultEngineName is used when no name is configured.
const DefaultEngineName = "Test Engine"

// DefaultSimVersion is the simulator version the output targets by default.
const DefaultSimVersion = "0.1.14"

// Params holds the scalar engine parameters. Zero values mean "use the
// default"; see WithDefaults. IdleThrottlePlatePosition is a pointer
// because a closed idle plate (0) is a real setting.
//
// Units: torque lb·ft, speeds rpm, lengths mm, small masses g, crank and
// flywheel masses kg, chamber volume cc, lobe lift thou, durations and
// centers degrees.
type Params struct {
	Name string `json:"name" yaml:"name,omitempty" koanf:"name"`

	StarterTorque float64 `json:"starter_torque" yaml:"starter_torque,omitempty" koanf:"starter_torque"`
	StarterSpeed  float64 `json:"starter_speed" yaml:"starter_speed,omitempty" koanf:"starter_speed"`
	Redline       float64 `json:"redline" yaml:"redline,omitempty" koanf:"redline"`
	RevLimit      float64 `json:"rev_limit" yaml:"rev_limit,omitempty" koanf:"rev_limit"`
	ThrottleGamma float64 `json:"throttle_gamma" yaml:"throttle_gamma,omitempty" koanf:"throttle_gamma"`

	Stroke            float64 `json:"stroke" yaml:"stroke,omitempty" koanf:"stroke"`
	Bore              float64 `json:"bore" yaml:"bore,omitempty" koanf:"bore"`
	RodLength         float64 `json:"rod_length" yaml:"rod_length,omitempty" koanf:"rod_length"`
	RodMass           float64 `json:"rod_mass" yaml:"rod_mass,omitempty" koanf:"rod_mass"`
	CompressionHeight float64 `json:"compression_height" yaml:"compression_height,omitempty" koanf:"compression_height"`
	CrankMass         float64 `json:"crank_mass" yaml:"crank_mass,omitempty" koanf:"crank_mass"`
	FlywheelMass      float64 `json:"flywheel_mass" yaml:"flywheel_mass,omitempty" koanf:"flywheel_mass"`
	FlywheelRadius    float64 `json:"flywheel_radius" yaml:"flywheel_radius,omitempty" koanf:"flywheel_radius"`
	PistonMass        float64 `json:"piston_mass" yaml:"piston_mass,omitempty" koanf:"piston_mass"`
	ChamberVolume     float64 `json:"chamber_volume" yaml:"chamber_volume,omitempty" koanf:"chamber_volume"`

	IntakeLobeLift       float64 `json:"intake_lobe_lift" yaml:"intake_lobe_lift,omitempty" koanf:"intake_lobe_lift"`
	IntakeLobeDuration   float64 `json:"intake_lobe_duration" yaml:"intake_lobe_duration,omitempty" koanf:"intake_lobe_duration"`
	IntakeLobeGamma      float64 `json:"intake_lobe_gamma" yaml:"intake_lobe_gamma,omitempty" koanf:"intake_lobe_gamma"`
	IntakeLobeCenter     float64 `json:"intake_lobe_center" yaml:"intake_lobe_center,omitempty" koanf:"intake_lobe_center"`
	ExhaustLobeLift      float64 `json:"exhaust_lobe_lift" yaml:"exhaust_lobe_lift,omitempty" koanf:"exhaust_lobe_lift"`
	ExhaustLobeDuration  float64 `json:"exhaust_lobe_duration" yaml:"exhaust_lobe_duration,omitempty" koanf:"exhaust_lobe_duration"`
	ExhaustLobeGamma     float64 `json:"exhaust_lobe_gamma" yaml:"exhaust_lobe_gamma,omitempty" koanf:"exhaust_lobe_gamma"`
	ExhaustLobeCenter    float64 `json:"exhaust_lobe_center" yaml:"exhaust_lobe_center,omitempty" koanf:"exhaust_lobe_center"`
	SimulationFrequency  int     `json:"simulation_frequency" yaml:"simulation_frequency,omitempty" koanf:"simulation_frequency"`
	MaxSLESolverSteps    int     `json:"max_sle_solver_steps" yaml:"max_sle_solver_steps,omitempty" koanf:"max_sle_solver_steps"`
	FluidSimulationSteps int     `json:"fluid_simulation_steps" yaml:"fluid_simulation_steps,omitempty" koanf:"fluid_simulation_steps"`

	IdleThrottlePlatePosition *float64 `json:"idle_throttle_plate_position" yaml:"idle_throttle_plate_position,omitempty" koanf:"idle_throttle_plate_position"`

	// SimVersion is the simulator release the output targets, e.g. "0.1.14".
	SimVersion string `json:"sim_version" yaml:"sim_version,omitempty" koanf:"sim_version"`
}

// DefaultParams returns the baseline configuration.
func DefaultParams() Params {
	return Params{
		Name:                      DefaultEngineName,
		StarterTorque:             70,
		StarterSpeed:              500,
		Redline:                   8000,
		RevLimit:                  9000,
		ThrottleGamma:             2.0,
		Stroke:                    86,
		Bore:                      86,
		RodLength:                 120,
		RodMass:                   50,
		CompressionHeight:         25.4,
		CrankMass:                 10,
		FlywheelMass:              10,
		FlywheelRadius:            100,
		PistonMass:                50,
		ChamberVolume:             300,
		IntakeLobeLift:            551,
		IntakeLobeDuration:        234,
		IntakeLobeGamma:           1.1,
		IntakeLobeCenter:          90,
		ExhaustLobeLift:           551,
		ExhaustLobeDuration:       235,
		ExhaustLobeGamma:          1.1,
		ExhaustLobeCenter:         112,
		SimulationFrequency:       10000,
		MaxSLESolverSteps:         128,
		FluidSimulationSteps:      4,
		IdleThrottlePlatePosition: Float64(0.999),
		SimVersion:                DefaultSimVersion,
	}
}

// WithDefaults returns a copy of p with every zero field replaced by its
// default. RevLimit defaults to Redline + 1000 using the resolved redline.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.Name == "" {
		p.Name = d.Name
	}
	setF := func(v *float64, def float64) {
		if *v == 0 {
			*v = def
		}
	}
	setI := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	setF(&p.StarterTorque, d.StarterTorque)
	setF(&p.StarterSpeed, d.StarterSpeed)
	setF(&p.Redline, d.Redline)
	setF(&p.RevLimit, p.Redline+1000)
	setF(&p.ThrottleGamma, d.ThrottleGamma)
	setF(&p.Stroke, d.Stroke)
	setF(&p.Bore, d.Bore)
	setF(&p.RodLength, d.RodLength)
	setF(&p.RodMass, d.RodMass)
	setF(&p.CompressionHeight, d.CompressionHeight)
	setF(&p.CrankMass, d.CrankMass)
	setF(&p.FlywheelMass, d.FlywheelMass)
	setF(&p.FlywheelRadius, d.FlywheelRadius)
	setF(&p.PistonMass, d.PistonMass)
	setF(&p.ChamberVolume, d.ChamberVolume)
	setF(&p.IntakeLobeLift, d.IntakeLobeLift)
	setF(&p.IntakeLobeDuration, d.IntakeLobeDuration)
	setF(&p.IntakeLobeGamma, d.IntakeLobeGamma)
	setF(&p.IntakeLobeCenter, d.IntakeLobeCenter)
	setF(&p.ExhaustLobeLift, d.ExhaustLobeLift)
	setF(&p.ExhaustLobeDuration, d.ExhaustLobeDuration)
	setF(&p.ExhaustLobeGamma, d.ExhaustLobeGamma)
	setF(&p.ExhaustLobeCenter, d.ExhaustLobeCenter)
	setI(&p.SimulationFrequency, d.SimulationFrequency)
	setI(&p.MaxSLESolverSteps, d.MaxSLESolverSteps)
	setI(&p.FluidSimulationSteps, d.FluidSimulationSteps)
	if p.IdleThrottlePlatePosition == nil {
		p.IdleThrottlePlatePosition = d.IdleThrottlePlatePosition
	}
	if p.SimVersion == "" {
		p.SimVersion = d.SimVersion
	}
	return p
}

// Merge returns p with every non-zero field of override applied on top.
// A non-nil IdleThrottlePlatePosition is applied even when it is zero.
func (p Params) Merge(override Params) Params {
	if override.Name != "" {
		p.Name = override.Name
	}
	mergeF := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	mergeI := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	mergeF(&p.StarterTorque, override.StarterTorque)
	mergeF(&p.StarterSpeed, override.StarterSpeed)
	mergeF(&p.Redline, override.Redline)
	mergeF(&p.RevLimit, override.RevLimit)
	mergeF(&p.ThrottleGamma, override.ThrottleGamma)
	mergeF(&p.Stroke, override.Stroke)
	mergeF(&p.Bore, override.Bore)
	mergeF(&p.RodLength, override.RodLength)
	mergeF(&p.RodMass, override.RodMass)
	mergeF(&p.CompressionHeight, override.CompressionHeight)
	mergeF(&p.CrankMass, override.CrankMass)
	mergeF(&p.FlywheelMass, override.FlywheelMass)
	mergeF(&p.FlywheelRadius, override.FlywheelRadius)
	mergeF(&p.PistonMass, override.PistonMass)
	mergeF(&p.ChamberVolume, override.ChamberVolume)
	mergeF(&p.IntakeLobeLift, override.IntakeLobeLift)
	mergeF(&p.IntakeLobeDuration, override.IntakeLobeDuration)
	mergeF(&p.IntakeLobeGamma, override.IntakeLobeGamma)
	mergeF(&p.IntakeLobeCenter, override.IntakeLobeCenter)
	mergeF(&p.ExhaustLobeLift, override.ExhaustLobeLift)
	mergeF(&p.ExhaustLobeDuration, override.ExhaustLobeDuration)
	mergeF(&p.ExhaustLobeGamma, override.ExhaustLobeGamma)
	mergeF(&p.ExhaustLobeCenter, override.ExhaustLobeCenter)
	mergeI(&p.SimulationFrequency, override.SimulationFrequency)
	mergeI(&p.MaxSLESolverSteps, override.MaxSLESolverSteps)
	mergeI(&p.FluidSimulationSteps, override.FluidSimulationSteps)
	if override.IdleThrottlePlatePosition != nil {
		p.IdleThrottlePlatePosition = Float64(*override.IdleThrottlePlatePosition)
	}
	if override.SimVersion != "" {
		p.SimVersion = override.SimVersion
	}
	return p
}

// Validate rejects parameters the simulator cannot use.
func (p Params) Validate() error {
	var problems []string
	positive := map[string]float64{
		"bore":       p.Bore,
		"stroke":     p.Stroke,
		"rod_length": p.RodLength,
	}
	for _, name := range []string{"bore", "stroke", "rod_length"} {
		if positive[name] <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive", name))
		}
	}
	if p.SimulationFrequency <= 0 {
		problems = append(problems, "simulation_frequency must be positive")
	}
	if idle := p.IdleThrottle(); idle < 0 || idle > 1 {
		problems = append(problems, "idle_throttle_plate_position must be within 0..1")
	}
	if p.RevLimit < p.Redline {
		problems = append(problems, "rev_limit must not be below redline")
	}
	if strings.ContainsAny(p.Name, "\"\n") {
		problems = append(problems, "name must not contain quotes or newlines")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(problems, "; "))
	}
	return nil
}

// IdleThrottle returns the idle throttle plate position, or the default
// when it is unset.
func (p Params) IdleThrottle() float64 {
	if p.IdleThrottlePlatePosition == nil {
		return *DefaultParams().IdleThrottlePlatePosition
	}
	return *p.IdleThrottlePlatePosition
}

// Float64 returns a pointer to v.
func Float64(v float64) *float64 {
	return &v
}
