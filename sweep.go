package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

type reservedEntry struct {
	path string
	size int64
}

// findReserved walks root and returns every non-directory entry that has to
// be deleted through the extended-length namespace. Unreadable directories
// below root are logged and skipped.
func findReserved(ctx context.Context, root string) ([]reservedEntry, error) {
	var found []reservedEntry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			logrus.WithError(err).WithField("path", path).Warn("skipping unreadable entry")
			return nil
		}
		if d.IsDir() || !needsRawDelete(d.Name()) {
			return nil
		}
		entry := reservedEntry{path: path}
		// Info comes from the directory listing; a stat by path would open
		// the device instead of the file.
		if info, err := d.Info(); err == nil {
			entry.size = info.Size()
		}
		found = append(found, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// sweepReserved deletes the reserved entries below root and reports each
// deletion on out. Per-file failures are collected and returned together;
// the sweep itself carries on.
func sweepReserved(ctx context.Context, root string, dryRun bool, out io.Writer) (deleted []string, _ error) {
	found, err := findReserved(ctx, root)
	if err != nil {
		return nil, err
	}

	var errs *multierror.Error
	for _, entry := range found {
		if dryRun {
			fmt.Fprintf(out, "would delete reserved: %s\n", entry.path)
			continue
		}
		if err := deleteRaw(entry.path); err != nil {
			logrus.WithError(err).WithField("path", entry.path).Warn("could not delete reserved entry")
			errs = multierror.Append(errs, err)
			continue
		}
		deleted = append(deleted, entry.path)
		fmt.Fprintf(out, "deleted reserved: %s\n", entry.path)
	}
	return deleted, errs.ErrorOrNil()
}
