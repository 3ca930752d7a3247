package config

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/xdg/simplog/internal/term"
)

// Edit opens the configuration file in the user's editor.
// If the file doesn't exist, the default one is created first.
// The editor is determined by the EDITOR environment variable, falling back to "vi".
// After the editor exits, the configuration is loaded and validated. If validation
// fails, a warning is printed to stderr but the function returns nil (the user may want to
// fix the file manually later).
func Edit() error {
	path := Path()

	if err := WriteDefault(); err != nil {
		return fmt.Errorf("create default config: %w", err)
	}

	if err := openEditor(path); err != nil {
		return err
	}

	if _, err := Load(path); err != nil {
		_, _ = fmt.Fprintf(term.Stderr(), "warning: config has errors after edit: %v\n", err)
	}
	return nil
}

// openEditor opens the specified file in the user's editor.
func openEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", editor, err)
	}
	return nil
}
