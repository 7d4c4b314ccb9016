package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/docker/go-units"
	"github.com/mattn/go-isatty"
)

// scanMarkdown describes the reserved entries found below dir as a
// markdown section.
func scanMarkdown(dir string, found []reservedEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", dir)
	if len(found) == 0 {
		b.WriteString("No reserved entries found.\n\n")
		return b.String()
	}
	var total int64
	b.WriteString("| Entry | Size |\n|---|---|\n")
	for _, entry := range found {
		rel, err := filepath.Rel(dir, entry.path)
		if err != nil {
			rel = entry.path
		}
		rel = strings.ReplaceAll(filepath.ToSlash(rel), "|", `\|`)
		fmt.Fprintf(&b, "| %s | %s |\n", rel, units.BytesSize(float64(entry.size)))
		total += entry.size
	}
	fmt.Fprintf(&b, "\n%d reserved entries, %s in total.\n\n", len(found), units.BytesSize(float64(total)))
	return b.String()
}

// renderMarkdown writes md to w, rendered for the terminal when tty is set.
func renderMarkdown(w io.Writer, md string, tty bool) error {
	if !tty {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func execScan(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var md strings.Builder
	for _, dir := range dedupeDirs(args) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		found, err := findReserved(ctx, abs)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", dir, err)
		}
		md.WriteString(scanMarkdown(abs, found))
	}
	return renderMarkdown(os.Stdout, md.String(), isatty.IsTerminal(os.Stdout.Fd()))
}
