package core

// Vehicle describes the load the simulated engine drives.
type Vehicle struct {
	Mass              float64 `json:"mass" yaml:"mass,omitempty" koanf:"mass"`                                     // kg
	DragCoefficient   float64 `json:"drag_coefficient" yaml:"drag_coefficient,omitempty" koanf:"drag_coefficient"`
	FrontalWidth      float64 `json:"frontal_width" yaml:"frontal_width,omitempty" koanf:"frontal_width"`          // inch
	FrontalHeight     float64 `json:"frontal_height" yaml:"frontal_height,omitempty" koanf:"frontal_height"`       // inch
	DiffRatio         float64 `json:"diff_ratio" yaml:"diff_ratio,omitempty" koanf:"diff_ratio"`
	TireRadius        float64 `json:"tire_radius" yaml:"tire_radius,omitempty" koanf:"tire_radius"`                      // inch
	RollingResistance float64 `json:"rolling_resistance" yaml:"rolling_resistance,omitempty" koanf:"rolling_resistance"` // N
}

// DefaultVehicle returns the baseline vehicle.
func DefaultVehicle() Vehicle {
	return Vehicle{
		Mass:              798,
		DragCoefficient:   0.9,
		FrontalWidth:      72,
		FrontalHeight:     36,
		DiffRatio:         4.10,
		TireRadius:        9,
		RollingResistance: 200,
	}
}

// WithDefaults fills zero fields.
func (v Vehicle) WithDefaults() Vehicle {
	d := DefaultVehicle()
	for _, f := range []struct{ dst, def *float64 }{
		{&v.Mass, &d.Mass},
		{&v.DragCoefficient, &d.DragCoefficient},
		{&v.FrontalWidth, &d.FrontalWidth},
		{&v.FrontalHeight, &d.FrontalHeight},
		{&v.DiffRatio, &d.DiffRatio},
		{&v.TireRadius, &d.TireRadius},
		{&v.RollingResistance, &d.RollingResistance},
	} {
		if *f.dst == 0 {
			*f.dst = *f.def
		}
	}
	return v
}

// Transmission describes the gearbox.
type Transmission struct {
	MaxClutchTorque float64   `json:"max_clutch_torque" yaml:"max_clutch_torque,omitempty" koanf:"max_clutch_torque"` // lb·ft
	Gears           []float64 `json:"gears" yaml:"gears,omitempty" koanf:"gears"`
}

// DefaultTransmission returns the baseline six-speed gearbox.
func DefaultTransmission() Transmission {
	return Transmission{
		MaxClutchTorque: 1000,
		Gears:           []float64{2.8, 2.29, 1.93, 1.583, 1.375, 1.19},
	}
}

// WithDefaults fills zero fields.
func (t Transmission) WithDefaults() Transmission {
	d := DefaultTransmission()
	if t.MaxClutchTorque == 0 {
		t.MaxClutchTorque = d.MaxClutchTorque
	}
	if len(t.Gears) == 0 {
		t.Gears = d.Gears
	}
	return t
}

// TimingSample is one point of the ignition advance curve.
type TimingSample struct {
	RPM     float64 `json:"rpm" yaml:"rpm" koanf:"rpm"`
	Advance float64 `json:"advance" yaml:"advance" koanf:"advance"` // degrees
}

// Ignition describes the ignition module.
type Ignition struct {
	// CurveReference is the rpm reference the timing curve is built with.
	CurveReference  float64        `json:"curve_reference" yaml:"curve_reference,omitempty" koanf:"curve_reference"`
	TimingCurve     []TimingSample `json:"timing_curve" yaml:"timing_curve,omitempty" koanf:"timing_curve"`
	LimiterDuration float64        `json:"limiter_duration" yaml:"limiter_duration,omitempty" koanf:"limiter_duration"` // seconds
}

// DefaultIgnition returns the baseline advance curve.
func DefaultIgnition() Ignition {
	return Ignition{
		CurveReference: 4000,
		TimingCurve: []TimingSample{
			{RPM: 0, Advance: 18},
			{RPM: 4000, Advance: 40},
			{RPM: 8000, Advance: 40},
			{RPM: 12000, Advance: 40},
			{RPM: 14000, Advance: 40},
			{RPM: 18000, Advance: 40},
		},
		LimiterDuration: 0.1,
	}
}

// WithDefaults fills zero fields.
func (i Ignition) WithDefaults() Ignition {
	d := DefaultIgnition()
	if i.CurveReference == 0 {
		i.CurveReference = d.CurveReference
	}
	if len(i.TimingCurve) == 0 {
		i.TimingCurve = d.TimingCurve
	}
	if i.LimiterDuration == 0 {
		i.LimiterDuration = d.LimiterDuration
	}
	return i
}
