// Package config provides the YAML configuration for the simplog CLI.
// The file lives at ~/.config/simplog/config.yaml by default.
package config

// Config is the top-level simplog configuration.
type Config struct {
	// Verbosity is the threshold level name. Unknown names fall back to
	// error, the same as on the command line.
	Verbosity string `yaml:"verbosity,omitempty"`
	// Prefix starts each line with the level name. Defaults to true.
	Prefix    *bool           `yaml:"prefix,omitempty"`
	Timestamp TimestampConfig `yaml:"timestamp,omitempty"`
	// Color is one of auto, always or never.
	Color string `yaml:"color,omitempty"`
}

// TimestampConfig selects the timestamp printed before each line.
type TimestampConfig struct {
	// Mode is one of none, clock or elapsed.
	Mode string `yaml:"mode,omitempty"`
	// Format is the strftime pattern used in clock mode (e.g. "%T").
	Format string `yaml:"format,omitempty"`
}

// Timestamp modes.
const (
	TimestampNone    = "none"
	TimestampClock   = "clock"
	TimestampElapsed = "elapsed"
)

// ShowPrefix reports whether the level prefix is enabled, treating an
// unset value as true.
func (c *Config) ShowPrefix() bool {
	return c.Prefix == nil || *c.Prefix
}
