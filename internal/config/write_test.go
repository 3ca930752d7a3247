package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	want := filepath.Join("/custom/config", "simplog", "config.yaml")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestWriteDefault_Creates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := Path()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("config file should not exist before test: %v", err)
	}

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestWriteDefault_TemplateMatchesDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.Verbosity != def.Verbosity || cfg.Color != def.Color ||
		cfg.Timestamp != def.Timestamp || cfg.ShowPrefix() != def.ShowPrefix() {
		t.Errorf("template config = %+v, want %+v", cfg, def)
	}
}

func TestWriteDefault_DoesNotOverwrite(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := EnsureDir(); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	custom := []byte("verbosity: debug\n")
	if err := os.WriteFile(Path(), custom, 0o600); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("os.ReadFile() error = %v", err)
	}
	if string(data) != string(custom) {
		t.Errorf("WriteDefault() overwrote existing config: %q", data)
	}
}
