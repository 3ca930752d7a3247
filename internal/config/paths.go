package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xdg/simplog/internal/pathutil"
)

// Dir returns the simplog configuration directory: $XDG_CONFIG_HOME/simplog,
// or ~/.config/simplog when XDG_CONFIG_HOME is unset.
func Dir() string {
	return pathutil.XDGDir("XDG_CONFIG_HOME", "~/.config", "simplog")
}

// Path returns the full path to the configuration file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// EnsureDir creates the configuration directory if it doesn't exist,
// with user-only permissions.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}
