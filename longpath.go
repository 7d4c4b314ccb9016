package main

import "strings"

const (
	longPathPrefix    = `\\?\`
	uncLongPathPrefix = `\\?\UNC\`
	devicePathPrefix  = `\\.\`
)

// longPath converts an absolute Windows path into its extended-length form,
// which bypasses Win32 name parsing (reserved names, trailing dots, MAX_PATH).
// The \\?\ namespace does no normalization, so forward slashes are converted
// here and the path must already be clean.
func longPath(abs string) string {
	abs = strings.ReplaceAll(abs, "/", `\`)
	if strings.HasPrefix(abs, longPathPrefix) || strings.HasPrefix(abs, devicePathPrefix) {
		return abs
	}
	if strings.HasPrefix(abs, `\\`) {
		return uncLongPathPrefix + abs[2:]
	}
	return longPathPrefix + abs
}
