package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/silentfield/fdkit/pkg/dirtree"
)

var mkdirsMode string

var mkdirsCmd = &cobra.Command{
	Use:   "mkdirs path [path...]",
	Short: "Create directories and any missing ancestors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := strconv.ParseUint(mkdirsMode, 8, 32)
		if err != nil {
			return fmt.Errorf("mkdirs: invalid mode %q: %w", mkdirsMode, err)
		}
		for _, path := range args {
			if err := dirtree.MakeAll(path, os.FileMode(mode)); err != nil {
				return err
			}
			logger.Debug("created", "path", path, "mode", mkdirsMode)
		}
		return nil
	},
}

func init() {
	mkdirsCmd.Flags().StringVarP(&mkdirsMode, "mode", "m", "0755", "octal permission mode for created directories")
	rootCmd.AddCommand(mkdirsCmd)
}
