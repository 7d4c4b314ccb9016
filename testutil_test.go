package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// makeTree creates the given files (slash-separated, relative to root) with
// a few bytes of content each.
func makeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

// releaseTree is the kind of output an electron-builder run leaves behind.
var releaseTree = []string{
	"latest.yml",
	"nul",
	"win-unpacked/app.exe",
	"win-unpacked/resources/CON",
	"win-unpacked/resources/aux.txt",
	"win-unpacked/locales/en-US.pak",
	"builder-debug.yml.",
}
