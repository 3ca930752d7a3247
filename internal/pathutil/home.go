// Package pathutil resolves user-relative paths for simplog's files.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

// XDGDir returns the application directory under an XDG base directory.
// The base is taken from the environment variable env (e.g. XDG_CONFIG_HOME)
// and falls back to fallback (e.g. "~/.config"). Both may start with ~.
func XDGDir(env, fallback, app string) string {
	base := os.Getenv(env)
	if base == "" {
		base = fallback
	}
	return filepath.Join(ExpandHome(base), app)
}
