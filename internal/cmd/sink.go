package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/simplog"
	"github.com/xdg/simplog/facade"
	"github.com/xdg/simplog/internal/config"
)

// effectiveConfig loads the config file and applies the flags the user set.
// Bad flag values are usage errors; a bad file is an ordinary failure.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("elapsed") && flags.Changed("clock") {
		return nil, usageError("--elapsed and --clock cannot be used together")
	}
	if flags.Changed("verbosity") {
		cfg.Verbosity = flagVerbosity
	}
	if flags.Changed("no-prefix") {
		show := !flagNoPrefix
		cfg.Prefix = &show
	}
	if flags.Changed("elapsed") {
		if flagElapsed {
			cfg.Timestamp = config.TimestampConfig{Mode: config.TimestampElapsed}
		} else {
			cfg.Timestamp = config.TimestampConfig{Mode: config.TimestampNone}
		}
	}
	if flags.Changed("clock") {
		if flagClock == "" {
			cfg.Timestamp = config.TimestampConfig{Mode: config.TimestampNone}
		} else {
			cfg.Timestamp = config.TimestampConfig{Mode: config.TimestampClock, Format: flagClock}
		}
	}
	if flags.Changed("color") {
		cfg.Color = flagColor
	}

	if err := config.Validate(cfg); err != nil {
		return nil, usageError("invalid flags: %v", err)
	}
	return cfg, nil
}

// installSink registers the console sink described by the effective config
// and routes the standard library logger through it.
func installSink(cmd *cobra.Command) (*simplog.Sink, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}
	sc, err := cfg.SinkConfig()
	if err != nil {
		return nil, fmt.Errorf("build sink: %w", err)
	}

	sink := simplog.New(sc)
	if err := sink.Register(); err != nil {
		return nil, registrationError(err)
	}
	facade.RedirectStdLog(facade.LevelInfo)
	return sink, nil
}
