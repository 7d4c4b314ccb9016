package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindReserved(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, releaseTree...)

	found, err := findReserved(context.Background(), root)
	require.NoError(t, err)

	var paths []string
	for _, entry := range found {
		paths = append(paths, entry.path)
		assert.EqualValues(t, 1, entry.size)
	}
	assert.Equal(t, []string{
		filepath.Join(root, "builder-debug.yml."),
		filepath.Join(root, "nul"),
		filepath.Join(root, "win-unpacked", "resources", "CON"),
		filepath.Join(root, "win-unpacked", "resources", "aux.txt"),
	}, paths)
}

func TestFindReservedSkipsReservedDirectories(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "con/app.js")

	found, err := findReserved(context.Background(), root)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindReservedMissingRoot(t *testing.T) {
	_, err := findReserved(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindReservedCancelled(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, releaseTree...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := findReserved(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweepReserved(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, releaseTree...)

	var out bytes.Buffer
	deleted, err := sweepReserved(context.Background(), root, false, &out)
	require.NoError(t, err)
	assert.Len(t, deleted, 4)

	assert.Contains(t, out.String(), "deleted reserved: "+filepath.Join(root, "nul")+"\n")
	assert.NoFileExists(t, filepath.Join(root, "nul"))
	assert.NoFileExists(t, filepath.Join(root, "win-unpacked", "resources", "CON"))
	assert.FileExists(t, filepath.Join(root, "latest.yml"))
	assert.FileExists(t, filepath.Join(root, "win-unpacked", "app.exe"))
}

func TestSweepReservedDryRun(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, releaseTree...)

	var out bytes.Buffer
	deleted, err := sweepReserved(context.Background(), root, true, &out)
	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Contains(t, out.String(), "would delete reserved: "+filepath.Join(root, "nul")+"\n")
	assert.NotContains(t, out.String(), "deleted reserved:")
	assert.FileExists(t, filepath.Join(root, "nul"))
}
