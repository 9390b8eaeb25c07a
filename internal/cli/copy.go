package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/silentfield/fdkit/pkg/dirtree"
	"github.com/silentfield/fdkit/pkg/filecopy"
)

var copyParents bool

var copyCmd = &cobra.Command{
	Use:   "copy src dst",
	Short: "Copy a whole file, using an in-kernel transfer when possible",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath, dstPath := args[0], args[1]

		src, err := os.Open(srcPath)
		if err != nil {
			return err
		}
		defer src.Close()

		if copyParents {
			if dir, _ := dirtree.SplitLast(dstPath); dir != "" {
				if err := dirtree.MakeAll(dir, 0o755); err != nil {
					return err
				}
			}
		}

		dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}

		if err := filecopy.Copy(src, dst); err != nil {
			dst.Close()
			var re *filecopy.ReadError
			var we *filecopy.WriteError
			switch {
			case errors.As(err, &re):
				logger.Error("reading source failed", "src", srcPath)
			case errors.As(err, &we):
				logger.Error("writing destination failed", "dst", dstPath)
			}
			return err
		}
		return dst.Close()
	},
}

func init() {
	copyCmd.Flags().BoolVar(&copyParents, "parents", false, "create missing parent directories of dst")
	rootCmd.AddCommand(copyCmd)
}
