package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/xdg/simplog/facade"
	"github.com/xdg/simplog/internal/term"
)

// result holds what one CLI invocation wrote.
type result struct {
	stdout string // log lines and command output
	stderr string // error log lines
	cobra  string // cobra's own help and error text
	err    error
}

// execute runs the root command with args and a fresh facade, capturing
// the console streams. The config directory points at an empty temp dir.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr, out bytes.Buffer
	facade.Reset()
	term.SetOutput(&stdout)
	term.SetErrOutput(&stderr)
	defer func() {
		facade.Reset()
		term.Reset()
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
		resetFlags(rootCmd)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	resetFlags(rootCmd)
	var in io.Reader = strings.NewReader(stdin)
	rootCmd.SetIn(in)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), cobra: out.String(), err: err}
}

// resetFlags restores every flag of c and its subcommands to its default
// and clears Changed, since cobra commands are package globals.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRootCommand_Help(t *testing.T) {
	res := execute(t, "", "--help")
	if res.err != nil {
		t.Fatalf("root command --help returned error: %v", res.err)
	}

	expectedStrings := []string{
		"simplog",
		"verbosity",
		"Usage:",
		"Available Commands:",
		"emit",
		"pipe",
		"demo",
		"config",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(res.cobra, expected) {
			t.Errorf("help output missing expected string %q\nGot: %s", expected, res.cobra)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	res := execute(t, "", "--version")
	if res.err != nil {
		t.Fatalf("root command --version returned error: %v", res.err)
	}
	if !strings.Contains(res.cobra, "simplog") {
		t.Errorf("version output missing 'simplog'\nGot: %s", res.cobra)
	}
}

func TestEffectiveConfig_NoFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)

	cfg, err := effectiveConfig(&cobra.Command{})
	if err != nil {
		t.Fatalf("effectiveConfig() error = %v", err)
	}
	if cfg.Verbosity != "error" {
		t.Errorf("Verbosity = %q, want %q", cfg.Verbosity, "error")
	}
	if !cfg.ShowPrefix() {
		t.Error("ShowPrefix() = false, want true")
	}
}
