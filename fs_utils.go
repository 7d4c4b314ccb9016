package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// exists reports whether anything (file, directory or link) is at path.
func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// forceRemoveAll is a more robust alternative to [os.RemoveAll] that tries
// harder to remove all the files and directories.
func forceRemoveAll(path string) error {
	// first pass to make sure all the directories are writable
	filepath.Walk(path, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", path).Debug("walk")
			return nil
		}
		if info.IsDir() {
			err = os.Chmod(path, 0o777)
		} else {
			// remove files by the way
			err = os.Remove(path)
		}
		if err != nil {
			logrus.WithError(err).WithField("path", path).Debug("first pass")
		}
		return nil
	})
	// remove the remaining directories
	return os.RemoveAll(path)
}

// removeTree removes path recursively, ignoring what forceRemoveAll could
// not handle, then falls back to removing the directory itself. Only an
// error for a path that still exists is returned.
func removeTree(path string) error {
	if err := forceRemoveAll(path); err != nil {
		logrus.WithError(err).WithField("path", path).Debug("recursive removal incomplete")
	}
	if !exists(path) {
		return nil
	}
	return os.Remove(path)
}

// dedupeDirs cleans the paths and drops those resolving to the same
// absolute directory, comparing case-insensitively on Windows.
func dedupeDirs(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		cleaned := filepath.Clean(p)
		if p == "" {
			continue
		}
		key := cleaned
		if abs, err := filepath.Abs(cleaned); err == nil {
			key = abs
		}
		if runtime.GOOS == "windows" {
			key = strings.ToLower(key)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, cleaned)
	}
	return result
}
