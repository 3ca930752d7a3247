package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/simplog/internal/pathutil"
)

// Load loads the configuration from path, or from Path() when path is
// empty. A leading ~ in path is expanded.
// If the file doesn't exist, it returns Default().
// If the file exists but cannot be read, parsed or validated, it returns an
// error. Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}
	path = pathutil.ExpandHome(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills unset fields from Default().
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Verbosity == "" {
		cfg.Verbosity = def.Verbosity
	}
	if cfg.Prefix == nil {
		cfg.Prefix = def.Prefix
	}
	if cfg.Timestamp.Mode == "" {
		cfg.Timestamp.Mode = def.Timestamp.Mode
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
}
