// Package generator assembles the simulator document for a solved engine
// and writes it out.
//
// The generator is deterministic for a given engine, option set and
// randomness source: two runs with equally seeded sources produce
// byte-identical output.
package generator

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/dsl"
	"github.com/leapstack-labs/enginegen/pkg/format"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"github.com/leapstack-labs/enginegen/pkg/timing"
	"golang.org/x/mod/semver"
)

// Source supplies uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded Source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// solverStepsVersion is the first simulator release that accepts the
// fluid_simulation_steps and max_sle_solver_steps engine fields.
const solverStepsVersion = "v0.1.13"

// Generator builds simulator documents.
type Generator struct {
	rand         Source
	fuel         fuel.Fuel
	vehicle      core.Vehicle
	transmission core.Transmission
	ignition     core.Ignition
	logger       *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the randomness source for per-cylinder sound attenuation.
func WithRand(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rand = src
		}
	}
}

// WithFuel sets the fuel emitted in the engine block.
func WithFuel(f fuel.Fuel) Option {
	return func(g *Generator) {
		g.fuel = f
	}
}

// WithVehicle sets the vehicle block. Zero fields take defaults.
func WithVehicle(v core.Vehicle) Option {
	return func(g *Generator) {
		g.vehicle = v.WithDefaults()
	}
}

// WithTransmission sets the transmission block. Zero fields take defaults.
func WithTransmission(t core.Transmission) Option {
	return func(g *Generator) {
		g.transmission = t.WithDefaults()
	}
}

// WithIgnition sets the ignition module. Zero fields take defaults.
func WithIgnition(i core.Ignition) Option {
	return func(g *Generator) {
		g.ignition = i.WithDefaults()
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator with gasoline, the default vehicle, gearbox and
// ignition curve, and an unseeded randomness source.
func New(opts ...Option) *Generator {
	g := &Generator{
		rand:         globalSource{},
		fuel:         fuel.Default(),
		vehicle:      core.DefaultVehicle(),
		transmission: core.DefaultTransmission(),
		ignition:     core.DefaultIgnition(),
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Build assembles the document for e using the solved timing t.
func (g *Generator) Build(e *core.Engine, t *core.Timing) (*dsl.File, error) {
	if e == nil || t == nil {
		return nil, fmt.Errorf("%w: engine and timing are required", core.ErrInvalidParams)
	}
	if len(t.RodJournals) != e.CylinderCount() || len(t.Camshafts) != e.BankCount() {
		return nil, fmt.Errorf("%w: timing solved for %d cylinders in %d banks, engine has %d in %d",
			core.ErrInvalidCylinderCount, len(t.RodJournals), len(t.Camshafts), e.CylinderCount(), e.BankCount())
	}

	p := e.Params()
	version := "v" + p.SimVersion
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("%w: sim_version %q is not a release number", core.ErrInvalidParams, p.SimVersion)
	}

	b := &builder{
		gen:         g,
		engine:      e,
		timing:      t,
		params:      p,
		solverSteps: semver.Compare(version, solverStepsVersion) >= 0,
	}
	f := b.file()

	g.logger.Debug("built engine document",
		slog.String("name", p.Name),
		slog.Int("cylinders", e.CylinderCount()),
		slog.Int("banks", e.BankCount()),
		slog.String("fuel", g.fuel.Name),
		slog.String("sim_version", p.SimVersion))
	return f, nil
}

// Render solves e and returns the formatted document.
func (g *Generator) Render(e *core.Engine) ([]byte, error) {
	t, err := timing.Solve(e)
	if err != nil {
		return nil, err
	}
	f, err := g.Build(e, t)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := format.Fprint(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Generate solves e and writes the document to w.
func (g *Generator) Generate(w io.Writer, e *core.Engine) error {
	out, err := g.Render(e)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("%w: %w", core.ErrOutputWrite, err)
	}
	return nil
}

// wireName is the ignition wire reference for a cylinder.
func wireName(cyl int) string {
	return fmt.Sprintf("wires.wire%d", cyl)
}

// soundAttenuation draws a value uniformly from [0.5, 1.0).
func (g *Generator) soundAttenuation() float64 {
	return 0.5 + 0.5*g.rand.Float64()
}

var _ Source = (*rand.Rand)(nil)
