// Package cli implements the fdkit command tree. The primitive packages
// under pkg/ never log or print; all diagnostics live here.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var logger = newLogger()

// newLogger writes human-formatted output on a terminal and logfmt
// otherwise, so the tool stays grep-friendly inside scripts.
func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "fdkit",
	})
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		l.SetFormatter(log.LogfmtFormatter)
	}
	if os.Getenv("FDKIT_DEBUG") != "" {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

var rootCmd = &cobra.Command{
	Use:   "fdkit",
	Short: "Low-level filesystem and descriptor utilities",
	Long: `fdkit bundles the security-conscious filesystem primitives used by the
surrounding toolset: exclusive temp file creation, descriptor sweeping
before exec, recursive directory creation, and whole-file copying.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}
