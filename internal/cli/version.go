package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/silentfield/fdkit/pkg/caps"
	"github.com/silentfield/fdkit/pkg/version"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build capabilities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "fdkit", version.String())
		if versionVerbose {
			fmt.Fprintf(out, "combined create+cloexec: %v\n", caps.CombinedCreateTemp)
			fmt.Fprintf(out, "atomic dup+cloexec:      %v\n", caps.FastDup)
			fmt.Fprintf(out, "in-kernel file copy:     %v\n", caps.FastCopy)
			fmt.Fprintf(out, "buffer shredding:        %v\n", caps.SecureZero)
		}
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "also report the build's capability set")
	rootCmd.AddCommand(versionCmd)
}
