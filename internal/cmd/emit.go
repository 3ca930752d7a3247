package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/simplog/facade"
)

var emitCmd = &cobra.Command{
	Use:   "emit LEVEL MESSAGE...",
	Short: "Log one message",
	Long: `Log MESSAGE at LEVEL through the console sink.

LEVEL is one of error, warn, info, debug or trace. The message is dropped if
LEVEL is less severe than the verbosity.`,
	Example: `  simplog -v info emit info "Hello World!"
  simplog --clock "%T" emit error disk full`,
	Args: emitArgs,
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
}

func emitArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return usageError("emit needs a level and a message")
	}
	return nil
}

func runEmit(cmd *cobra.Command, args []string) error {
	level, err := parseLevelArg(args[0])
	if err != nil {
		return err
	}

	sink, err := installSink(cmd)
	if err != nil {
		return err
	}
	defer sink.Flush()

	facade.Log(level, "emit", "%s", strings.Join(args[1:], " "))
	return nil
}
