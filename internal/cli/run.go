package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/silentfield/fdkit/pkg/fdops"
)

var runKeepFDs []int

var runCmd = &cobra.Command{
	Use:   "run -- prog [args...]",
	Short: "Close inherited descriptors, then exec an untrusted program",
	Long: `run sweeps the descriptor table down to stdin, stdout, stderr and any
descriptors named with --keep-fd, then replaces the process image with the
given program. On success it does not return.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := exec.LookPath(args[0])
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}

		keep := append([]int{0, 1, 2}, runKeepFDs...)
		logger.Debug("sweeping descriptors", "keep", keep, "prog", prog)

		// Point of no return: nothing below may open descriptors.
		fdops.CloseAll(keep...)
		if err := unix.Exec(prog, args, os.Environ()); err != nil {
			return fmt.Errorf("run: exec %s: %w", prog, err)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().IntSliceVar(&runKeepFDs, "keep-fd", nil, "descriptor to leave open in addition to stdio (repeatable)")
	rootCmd.AddCommand(runCmd)
}
