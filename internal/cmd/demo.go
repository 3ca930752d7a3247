package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/simplog/facade"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Log a sample line at every level",
	Long: `Log "Hello World!" once at each level, from error to trace, to preview
the current verbosity, prefix, timestamp and color settings.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	sink, err := installSink(cmd)
	if err != nil {
		return err
	}
	defer sink.Flush()

	for _, l := range facade.Levels() {
		facade.Log(l, "demo", "Hello World!")
	}
	return nil
}
