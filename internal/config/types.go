// Package config provides the project configuration types for enginegen.
// This package is decoupled from CLI concerns and can be used by any tool
// that needs to load enginegen.yaml.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/fuel"
	"golang.org/x/mod/semver"
)

// ProjectConfig holds the generation settings shared by every command.
type ProjectConfig struct {
	// Engine holds parameter overrides applied on top of the preset.
	Engine       core.Params       `koanf:"engine"`
	Vehicle      core.Vehicle      `koanf:"vehicle"`
	Transmission core.Transmission `koanf:"transmission"`
	Ignition     core.Ignition     `koanf:"ignition"`

	Fuel       string        `koanf:"fuel"`
	SimVersion string        `koanf:"sim_version"`
	TieBreak   core.TieBreak `koanf:"tie_break"`

	// Seed makes sound attenuation reproducible. Zero means unseeded.
	Seed uint64 `koanf:"seed"`

	// Preset is the default preset name or file for generate and watch.
	Preset string `koanf:"preset"`
}

// Params returns the engine overrides with the project simulator version
// applied.
func (c *ProjectConfig) Params() core.Params {
	p := c.Engine
	if c.SimVersion != "" {
		p.SimVersion = c.SimVersion
	}
	return p
}

// FuelRecord resolves the configured fuel.
func (c *ProjectConfig) FuelRecord() (fuel.Fuel, error) {
	if c.Fuel == "" {
		return fuel.Default(), nil
	}
	return fuel.Lookup(c.Fuel)
}

// Validate checks the fields that can be checked without a preset.
func (c *ProjectConfig) Validate() error {
	var problems []string
	if _, err := c.FuelRecord(); err != nil {
		problems = append(problems, err.Error())
	}
	if v := c.SimVersion; v != "" && !semver.IsValid("v"+strings.TrimPrefix(v, "v")) {
		problems = append(problems, fmt.Sprintf("sim_version %q is not a semantic version", v))
	}
	if c.Transmission.MaxClutchTorque < 0 {
		problems = append(problems, "transmission.max_clutch_torque must not be negative")
	}
	for i, g := range c.Transmission.Gears {
		if g <= 0 {
			problems = append(problems, fmt.Sprintf("transmission.gears[%d] must be positive", i))
		}
	}
	if c.Vehicle.Mass < 0 {
		problems = append(problems, "vehicle.mass must not be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
