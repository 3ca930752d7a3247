package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde only", "~", home},
		{"tilde with subpath", "~/.config/simplog/config.yaml", filepath.Join(home, ".config", "simplog", "config.yaml")},
		{"absolute path unchanged", "/etc/simplog.yaml", "/etc/simplog.yaml"},
		{"relative path unchanged", "simplog.yaml", "simplog.yaml"},
		{"empty string unchanged", "", ""},
		{"tilde in middle unchanged", "/path/~/test", "/path/~/test"},
		{"tilde without slash unchanged", "~user", "~user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.input); got != tt.expected {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestXDGDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("failed to get home dir: %v", err)
	}

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		want := filepath.Join(home, ".config", "simplog")
		if got := XDGDir("XDG_CONFIG_HOME", "~/.config", "simplog"); got != want {
			t.Errorf("XDGDir() = %q, want %q", got, want)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		want := filepath.Join("/custom/config", "simplog")
		if got := XDGDir("XDG_CONFIG_HOME", "~/.config", "simplog"); got != want {
			t.Errorf("XDGDir() = %q, want %q", got, want)
		}
	})

	t.Run("env with tilde", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "~/custom-config")
		want := filepath.Join(home, "custom-config", "simplog")
		if got := XDGDir("XDG_CONFIG_HOME", "~/.config", "simplog"); got != want {
			t.Errorf("XDGDir() = %q, want %q", got, want)
		}
	})
}
