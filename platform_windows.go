//go:build windows

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

// mirrorSupported is true where robocopy is available.
const mirrorSupported = true

// deleteRaw deletes a single file through the \\?\ namespace.
//
// path must be absolute: filepath.Abs would run GetFullPathName, which
// resolves a reserved name such as C:\release\nul to the device \\.\nul.
func deleteRaw(path string) error {
	if !filepath.IsAbs(path) {
		return fmt.Errorf("deleteRaw: %q is not absolute", path)
	}
	p, err := windows.UTF16PtrFromString(longPath(path))
	if err != nil {
		return err
	}
	// DeleteFile refuses read-only files.
	_ = windows.SetFileAttributes(p, windows.FILE_ATTRIBUTE_NORMAL)
	if err := windows.DeleteFile(p); err != nil {
		return &os.PathError{Op: "DeleteFile", Path: path, Err: err}
	}
	return nil
}
