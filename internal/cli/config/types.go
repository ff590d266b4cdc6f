// Package config provides configuration management for the enginegen CLI.
//
// This package extends the shared project configuration from
// internal/config with CLI-specific fields and functionality.
package config

import (
	sharedcfg "github.com/leapstack-labs/enginegen/internal/config"
)

// ProjectConfig is an alias for the shared project configuration.
type ProjectConfig = sharedcfg.ProjectConfig

// Config holds all CLI configuration options.
type Config struct {
	ProjectConfig `koanf:",squash"`

	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory. Relative preset paths resolve against it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values - uses shared defaults from internal/config
const (
	DefaultFuel       = sharedcfg.DefaultFuel
	DefaultSimVersion = sharedcfg.DefaultSimVersion
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	EnvPrefix         = "ENGINEGEN_"
	DotEnvFile        = ".env"
)

// OutputFormats lists the accepted values of the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// Default returns a Config with every default applied, used when no
// configuration was loaded.
func Default() *Config {
	cfg := &Config{OutputFormat: DefaultOutput}
	sharedcfg.ApplyDefaults(&cfg.ProjectConfig)
	return cfg
}
