package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/chromadon/clean-release/cmd"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var errUnsafeTarget = errors.New("refusing to clean")

type cleanConfig struct {
	dryRun     bool
	skipMirror bool
	strict     bool
	progress   bool
	robocopy   string
	out        io.Writer
}

type cleanReport struct {
	dir     string
	deleted []string
	cleaned bool
}

// lockedWriter serializes writes from concurrent cleaners.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// checkTarget resolves dir and rejects the targets a typo would turn into a
// disaster: a filesystem root, the home directory, and the working
// directory or any of its parents.
func checkTarget(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if filepath.Dir(abs) == abs {
		return "", fmt.Errorf("%w %s: filesystem root", errUnsafeTarget, abs)
	}
	if home, err := os.UserHomeDir(); err == nil && samePath(abs, home) {
		return "", fmt.Errorf("%w %s: home directory", errUnsafeTarget, abs)
	}
	if cwd, err := os.Getwd(); err == nil && isWithin(cwd, abs) {
		return "", fmt.Errorf("%w %s: contains the working directory", errUnsafeTarget, abs)
	}
	return abs, nil
}

func samePath(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// isWithin reports whether path is parent or lies below it.
func isWithin(path, parent string) bool {
	rel, err := filepath.Rel(parent, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// runMirror runs the mirror step, showing the remaining size while it runs
// when cfg.progress is set.
func (cfg cleanConfig) runMirror(ctx context.Context, dir string) error {
	if !cfg.progress {
		return mirrorEmpty(ctx, cfg.robocopy, dir)
	}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		progressSize("mirror", dir, done)
	}()
	err := mirrorEmpty(ctx, cfg.robocopy, dir)
	close(done)
	wg.Wait()
	return err
}

// cleanDir removes dir in three steps: delete reserved names through the
// \\?\ namespace, mirror an empty directory over what is left, then remove
// the tree. The first two steps are best effort; a failure of the last one
// is reported on cfg.out and only returned in strict mode.
func cleanDir(ctx context.Context, cfg cleanConfig, dir string) (cleanReport, error) {
	abs, err := checkTarget(dir)
	if err != nil {
		return cleanReport{dir: dir}, err
	}
	report := cleanReport{dir: abs}
	log := logrus.WithField("dir", abs)

	info, err := os.Lstat(abs)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("release dir does not exist, nothing to clean")
		report.cleaned = true
		return report, nil
	}
	if err != nil {
		return report, err
	}
	if !info.IsDir() {
		return report, fmt.Errorf("%s is not a directory", abs)
	}

	deleted, err := sweepReserved(ctx, abs, cfg.dryRun, cfg.out)
	report.deleted = deleted
	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	if err != nil {
		log.WithError(err).Warn("reserved sweep incomplete")
	}
	if cfg.dryRun {
		return report, nil
	}

	switch {
	case cfg.skipMirror:
		log.Debug("mirror step skipped")
	case !mirrorSupported:
		log.Debugf("mirror step not available on %s", runtime.GOOS)
	default:
		if err := cfg.runMirror(ctx, abs); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			log.WithError(err).Warn("mirror step failed")
		}
	}

	if err := removeTree(abs); err != nil {
		// one Write per line; lockedWriter does not span calls
		fmt.Fprintln(cfg.out, color.YellowString("cleanup: %v", err))
		if cfg.strict {
			return report, fmt.Errorf("cleaning %s: %w", abs, err)
		}
		return report, nil
	}
	report.cleaned = true
	fmt.Fprintln(cfg.out, color.GreenString("release dir cleaned: %s", abs))
	return report, nil
}

// cleanAll cleans dirs concurrently, at most jobs at a time (unbounded when
// jobs <= 0). Failures of one directory do not stop the others.
func cleanAll(ctx context.Context, cfg cleanConfig, dirs []string, jobs int) ([]cleanReport, error) {
	reports := make([]cleanReport, len(dirs))
	errs := make([]error, len(dirs))

	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, dir := range dirs {
		g.Go(func() error {
			reports[i], errs[i] = cleanDir(ctx, cfg, dir)
			return nil
		})
	}
	g.Wait()

	var merr *multierror.Error
	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return reports, merr.ErrorOrNil()
}

func execClean(args []string, opts cmd.CleanOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dirs := dedupeDirs(args)
	robocopy := opts.Robocopy
	if robocopy == "" {
		robocopy = defaultRobocopy
	}
	cfg := cleanConfig{
		dryRun:     opts.DryRun,
		skipMirror: opts.SkipMirror,
		strict:     opts.Strict,
		robocopy:   robocopy,
		out:        &lockedWriter{w: os.Stdout},
		// concurrent progress lines would overwrite each other
		progress: len(dirs) == 1 && isatty.IsTerminal(os.Stdout.Fd()),
	}

	reports, err := cleanAll(ctx, cfg, dirs, opts.Jobs)
	for _, r := range reports {
		logrus.WithFields(logrus.Fields{
			"dir":      r.dir,
			"reserved": len(r.deleted),
			"cleaned":  r.cleaned,
		}).Debug("done")
	}
	return err
}
