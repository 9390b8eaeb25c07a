package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/silentfield/fdkit/pkg/tmpfile"
)

var (
	mktempDir    string
	mktempPrefix string
	mktempKeep   bool
)

var mktempCmd = &cobra.Command{
	Use:   "mktemp",
	Short: "Create an exclusively-created, owner-only temporary file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tf, err := tmpfile.Create(mktempDir, mktempPrefix)
		if err != nil {
			return err
		}
		defer tf.File.Close()
		if !mktempKeep {
			defer os.Remove(tf.Path)
		}

		logger.Debug("created temp file", "path", tf.Path, "keep", mktempKeep)
		fmt.Fprintln(cmd.OutOrStdout(), tf.Path)
		return nil
	},
}

func init() {
	mktempCmd.Flags().StringVarP(&mktempDir, "dir", "d", "", "directory to create the file in (default $TMPDIR, then /tmp)")
	mktempCmd.Flags().StringVarP(&mktempPrefix, "prefix", "p", "fdkit", "filename prefix")
	mktempCmd.Flags().BoolVar(&mktempKeep, "keep", false, "leave the file on disk instead of removing it on exit")
	rootCmd.AddCommand(mktempCmd)
}
