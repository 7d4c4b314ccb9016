package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/mattn/go-isatty"
)

// progressSize prints how many bytes are left below path until done is
// closed. It prints nothing when stdout is not a terminal.
func progressSize(prefix, path string, done chan struct{}) {
	// previous holds how many bytes the previous line contained
	// so that we can clear it in its entirety.
	var previous int
	tty := isatty.IsTerminal(os.Stdout.Fd())
	for {
		if tty {
			var usage int64
			filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
				if err == nil && info.Mode().IsRegular() {
					usage += info.Size()
				}
				return nil
			})
			fmt.Printf("\r%s", strings.Repeat(" ", previous))
			previous, _ = fmt.Printf("\r%s: %s left", prefix, units.BytesSize(float64(usage)))
		}

		select {
		case <-done:
			if tty {
				fmt.Printf("\r%s\r", strings.Repeat(" ", previous))
			}
			return
		case <-time.After(250 * time.Millisecond):
		}
	}
}
