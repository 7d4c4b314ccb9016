//go:build !windows

package main

import "os"

const mirrorSupported = false

// deleteRaw is a plain unlink outside Windows, where reserved device names
// are ordinary file names.
func deleteRaw(path string) error {
	return os.Remove(path)
}
