package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/simplog/facade"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

var pipeLevel string

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Log each line of stdin",
	Long: `Read stdin line by line and log every line at the given level.

Useful for passing another program's output through the same filter, prefix
and colors as the rest of the log.`,
	Example: `  make 2>&1 | simplog -v info pipe --level debug`,
	Args:    cobra.NoArgs,
	RunE:    runPipe,
}

func init() {
	pipeCmd.Flags().StringVarP(&pipeLevel, "level", "l", "info", "level for every line")
	rootCmd.AddCommand(pipeCmd)
}

func runPipe(cmd *cobra.Command, args []string) error {
	level, err := parseLevelArg(pipeLevel)
	if err != nil {
		return err
	}

	sink, err := installSink(cmd)
	if err != nil {
		return err
	}
	defer sink.Flush()

	w := facade.Writer(level)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if _, err := w.Write(scanner.Bytes()); err != nil {
			return fmt.Errorf("log line: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
