package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected %s)", c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	return c.ProjectConfig.Validate()
}
