// Package cmd implements the CLI commands for simplog.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/simplog/internal/version"
)

// Persistent flag values. Each overrides the config file only when set
// explicitly on the command line.
var (
	flagConfig    string
	flagVerbosity string
	flagNoPrefix  bool
	flagElapsed   bool
	flagClock     string
	flagColor     string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "simplog",
	Short: "Console logging with levels, timestamps and color",
	Long: `Simplog writes leveled log lines to the console.

Lines below the verbosity threshold are dropped. Error lines go to stderr and
everything else to stdout, colored by level when stdout is a terminal.

Defaults come from ~/.config/simplog/config.yaml (or
$XDG_CONFIG_HOME/simplog/config.yaml); flags override the file.`,
	Version:      version.String(),
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "config file (default is $XDG_CONFIG_HOME/simplog/config.yaml)")
	flags.StringVarP(&flagVerbosity, "verbosity", "v", "", "least severe level printed: error, warn, info, debug or trace")
	flags.BoolVar(&flagNoPrefix, "no-prefix", false, "omit the \"LEVEL\\t- \" prefix")
	flags.BoolVar(&flagElapsed, "elapsed", false, "start each line with the time since start")
	flags.StringVar(&flagClock, "clock", "", "start each line with the UTC time in this strftime format")
	flags.StringVar(&flagColor, "color", "", "color stdout lines: auto, always or never")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
