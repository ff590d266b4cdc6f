package config

import "github.com/leapstack-labs/enginegen/pkg/core"

// Default configuration values.
const (
	DefaultFuel       = "gasoline"
	DefaultSimVersion = core.DefaultSimVersion
	DefaultTieBreak   = "right"
)

// ApplyDefaults fills unset fields of a ProjectConfig. Engine parameters
// are left sparse so presets keep their own overrides.
func ApplyDefaults(c *ProjectConfig) {
	if c == nil {
		return
	}
	if c.Fuel == "" {
		c.Fuel = DefaultFuel
	}
	if c.SimVersion == "" {
		c.SimVersion = DefaultSimVersion
	}
	c.Vehicle = c.Vehicle.WithDefaults()
	c.Transmission = c.Transmission.WithDefaults()
	c.Ignition = c.Ignition.WithDefaults()
}

// DefaultMap returns the defaults in the flat form koanf's confmap
// provider loads.
func DefaultMap() map[string]any {
	return map[string]any{
		"fuel":        DefaultFuel,
		"sim_version": DefaultSimVersion,
		"tie_break":   DefaultTieBreak,
		"seed":        0,
	}
}
