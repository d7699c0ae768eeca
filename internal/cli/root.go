// Package cli wires the cobra command surface: the generate command that
// produces a review report for a revision range, plus version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "review-helper",
	Short: "Generate code review reports for a git revision range",
	Long: "review-helper clones (or reuses a cached copy of) a repository, collects\n" +
		"commit metadata and diffs over a revision range, and renders them into a\n" +
		"static HTML or Markdown report with per-line deep links for review.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print review-helper version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "review-helper version %s\n", version)
	},
}
