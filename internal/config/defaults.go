package config

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// Default returns a Config with all defaults populated: error threshold,
// level prefix on, no timestamp, color only on a terminal.
func Default() *Config {
	return &Config{
		Verbosity: "error",
		Prefix:    boolPtr(true),
		Timestamp: TimestampConfig{
			Mode: TimestampNone,
		},
		Color: "auto",
	}
}

// defaultConfigTemplate is written by WriteDefault. It must stay parseable
// and equivalent to Default().
const defaultConfigTemplate = `# simplog configuration
#
# Command-line flags override these values when given explicitly.

# Least severe level printed: error, warn, info, debug or trace.
# Anything else (including an empty value) means error.
verbosity: error

# Start each line with the level name, e.g. "INFO\t- message".
prefix: true

timestamp:
  # none, clock (UTC wall clock) or elapsed (time since start).
  mode: none
  # strftime pattern for clock mode, e.g. "%T" or "%Y-%m-%d %H:%M:%S".
  # format: "%T"

# ANSI colors on stdout: auto (only on a terminal), always or never.
color: auto
`
