package main

import (
	"os"
	"strings"

	"github.com/chromadon/clean-release/cmd"
)

func init() {
	// Set the exec functions for the cmd package
	cmd.SetExecFunctions(
		execClean,
		execScan,
	)
}

func main() {
	// For backward compatibility, add aliases for flags with underscores
	os.Args = updateFlagNames(os.Args)
	cmd.Execute()
}

// updateFlagNames replaces underscore flags with hyphen flags for backward compatibility
func updateFlagNames(args []string) []string {
	flagsToUpdate := map[string]string{
		"dry_run":     "dry-run",
		"skip_mirror": "skip-mirror",
		"log_level":   "log-level",
	}

	for i, arg := range args {
		for oldFlag, newFlag := range flagsToUpdate {
			if arg == "--"+oldFlag || arg == "-"+oldFlag {
				args[i] = "--" + newFlag
				break
			}
			if value, ok := strings.CutPrefix(arg, "--"+oldFlag+"="); ok {
				args[i] = "--" + newFlag + "=" + value
				break
			}
		}
	}

	return args
}
