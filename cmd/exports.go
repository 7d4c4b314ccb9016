package cmd

// The commands only parse arguments; the work is done by functions in
// package main, registered through SetExecFunctions.

var (
	execClean func(args []string, opts CleanOptions) error
	execScan  func(args []string) error
)

// CleanOptions carries the clean command flags to the main package.
type CleanOptions struct {
	DryRun     bool
	SkipMirror bool
	Strict     bool
	Jobs       int
	Robocopy   string
}

// SetExecFunctions sets the exec functions from the main package
func SetExecFunctions(
	clean func(args []string, opts CleanOptions) error,
	scan func(args []string) error,
) {
	execClean = clean
	execScan = scan
}
