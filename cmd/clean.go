package cmd

import (
	"github.com/spf13/cobra"
)

var cleanOpts CleanOptions

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean [flags] <dir>...",
	Short: "Delete release directories, including reserved-name files",
	Long: `Deletes each <dir> in three steps:

 1. files named after Windows devices (nul, con, aux, com1, lpt1, ...) or
    ending in a dot or space are deleted through the \\?\ namespace;
 2. an empty directory is mirrored over <dir> with robocopy, which removes
    long paths and other special entries (Windows only);
 3. the remaining tree is removed.

Residual errors of the last step are reported but do not fail the command
unless --strict is given.`,
	Example: `clean-release clean release
clean-release clean --dry-run C:\src\app\release`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execClean(args, cleanOpts)
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanOpts.DryRun, "dry-run", false,
		"Only print the reserved-name files that would be deleted.")

	cleanCmd.Flags().BoolVar(&cleanOpts.SkipMirror, "skip-mirror", false,
		"Do not run robocopy between the reserved-name sweep and the final removal.")

	cleanCmd.Flags().BoolVar(&cleanOpts.Strict, "strict", false,
		"Exit with an error when a directory could not be removed entirely.")

	cleanCmd.Flags().IntVarP(&cleanOpts.Jobs, "jobs", "j", 4,
		"Number of directories cleaned concurrently (0 for no limit).")

	cleanCmd.Flags().StringVar(&cleanOpts.Robocopy, "robocopy", envOr("CLEAN_RELEASE_ROBOCOPY", "robocopy"),
		"robocopy executable used for the mirror step.\n"+
			"Defaults to $CLEAN_RELEASE_ROBOCOPY, or robocopy from PATH.")
}
