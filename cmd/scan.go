package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>...",
	Short: "List the reserved-name files in a directory",
	Long: `Lists the entries below each <dir> that "clean-release clean" deletes
through the \\?\ namespace, without changing anything.`,
	Example: "clean-release scan release",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execScan(args)
	},
}
