// Package main provides the entry point for the timefang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/timefang/cmd/timefang/commands"
	"github.com/Sumatoshi-tech/timefang/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "timefang",
		Short: "Timefang - time tracking from commit messages",
		Long: `Timefang aggregates time-tracking commands embedded in git commit
messages into a per-day, per-ticket report.

Commands:
  report    Aggregate logged time per day and ticket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")

	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "timefang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
