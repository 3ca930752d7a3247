package config

import (
	"fmt"

	"github.com/xdg/simplog"
)

// Validate checks that cfg contains valid values:
//   - timestamp.mode is one of none, clock, elapsed (if non-empty)
//   - timestamp.format is a valid strftime pattern, required in clock mode
//     and rejected in the other modes
//   - color is one of auto, always, never (if non-empty)
//
// Verbosity is not validated; unknown names fall back to error.
func Validate(cfg *Config) error {
	switch cfg.Timestamp.Mode {
	case "", TimestampNone, TimestampElapsed:
		if cfg.Timestamp.Format != "" {
			return fmt.Errorf("timestamp.format: only allowed with mode %q, got mode %q", TimestampClock, cfg.Timestamp.Mode)
		}
	case TimestampClock:
		if cfg.Timestamp.Format == "" {
			return fmt.Errorf("timestamp.format: required when mode is %q", TimestampClock)
		}
		if _, err := simplog.ClockTimestamp(cfg.Timestamp.Format); err != nil {
			return fmt.Errorf("timestamp.format: %w", err)
		}
	default:
		return fmt.Errorf("timestamp.mode: must be one of none, clock, elapsed, got %q", cfg.Timestamp.Mode)
	}

	if _, err := simplog.ParseColorPolicy(cfg.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	return nil
}

// SinkConfig converts cfg into the options for simplog.New.
// cfg should already have passed Validate.
func (c *Config) SinkConfig() (simplog.Config, error) {
	out := simplog.Config{
		Verbosity:       c.Verbosity,
		ShowLevelPrefix: c.ShowPrefix(),
	}

	switch c.Timestamp.Mode {
	case TimestampClock:
		ts, err := simplog.ClockTimestamp(c.Timestamp.Format)
		if err != nil {
			return simplog.Config{}, err
		}
		out.Timestamp = ts
	case TimestampElapsed:
		out.Timestamp = simplog.ElapsedTimestamp()
	}

	color, err := simplog.ParseColorPolicy(c.Color)
	if err != nil {
		return simplog.Config{}, err
	}
	out.Color = color
	return out, nil
}
