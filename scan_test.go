package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestScanMarkdown(t *testing.T) {
	dir := filepath.FromSlash("/build/release")
	found := []reservedEntry{
		{path: filepath.Join(dir, "nul"), size: 0},
		{path: filepath.Join(dir, "win-unpacked", "CON"), size: 2048},
	}

	want := "## " + dir + "\n\n" +
		"| Entry | Size |\n|---|---|\n" +
		"| nul | 0B |\n" +
		"| win-unpacked/CON | 2KiB |\n" +
		"\n2 reserved entries, 2KiB in total.\n\n"
	if got := scanMarkdown(dir, found); got != want {
		t.Errorf("\nwant\n====\n%v\ngot\n===\n%v", want, got)
	}
}

func TestScanMarkdownEmpty(t *testing.T) {
	want := "## release\n\nNo reserved entries found.\n\n"
	if got := scanMarkdown("release", nil); got != want {
		t.Errorf("scanMarkdown() => %q, want %q", got, want)
	}
}

func TestRenderMarkdownPlain(t *testing.T) {
	md := "## release\n\nNo reserved entries found.\n\n"
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, md, false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != md {
		t.Errorf("renderMarkdown() => %q, want %q", buf.String(), md)
	}
}
