package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// defaultRobocopy is looked up in PATH.
const defaultRobocopy = "robocopy"

// mirrorFlags make robocopy purge everything in the destination that is not
// in the (empty) source, without printing file, directory, header or
// summary lines.
var mirrorFlags = []string{"/MIR", "/NFL", "/NDL", "/NJH", "/NJS"}

// robocopyError is returned when robocopy reports a failure exit code.
type robocopyError struct {
	code int
}

func (e *robocopyError) Error() string {
	return fmt.Sprintf("robocopy exited with code %d: %s", e.code, robocopyCodeText(e.code))
}

func robocopyCodeText(code int) string {
	switch {
	case code&16 != 0:
		return "fatal error, no files were purged"
	case code&8 != 0:
		return "some files or directories could not be purged"
	default:
		return "unknown failure"
	}
}

// robocopyResult maps a robocopy exit code to an error. Codes below 8 are
// bit sets of "copied", "extra" and "mismatched" and all mean success.
func robocopyResult(code int) error {
	if code < 8 {
		return nil
	}
	return &robocopyError{code: code}
}

// mirrorEmpty mirrors a fresh empty directory over target, which makes
// robocopy delete everything below target, including entries the Win32
// API cannot address by name.
func mirrorEmpty(ctx context.Context, robocopy, target string) error {
	empty, err := os.MkdirTemp("", "_empty_dir")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(empty); err != nil {
			logrus.WithError(err).WithField("path", empty).Debug("could not remove scratch directory")
		}
	}()

	args := append([]string{empty, target}, mirrorFlags...)
	cmd := exec.CommandContext(ctx, robocopy, args...)
	logrus.WithField("args", cmd.Args).Debug("running mirror")
	err = cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return robocopyResult(exitErr.ExitCode())
	}
	return fmt.Errorf("could not run %v: %w", cmd.Args, err)
}
