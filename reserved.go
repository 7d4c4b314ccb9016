package main

import "strings"

// reservedStems holds the Win32 device names. Windows maps any path whose
// final element has one of these stems to the device, regardless of the
// extension, so such files can only be removed through a \\?\ path.
var reservedStems = map[string]bool{
	"CON": true,
	"PRN": true,
	"AUX": true,
	"NUL": true,

	"COM0": true, "COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"COM¹": true, "COM²": true, "COM³": true,

	"LPT0": true, "LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
	"LPT¹": true, "LPT²": true, "LPT³": true,
}

// isReservedName reports whether name (a single path element) is a Windows
// reserved device name, e.g. "nul", "CON", "nul." or "aux.txt".
func isReservedName(name string) bool {
	stem := name
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	stem = strings.TrimRight(stem, " ")
	return reservedStems[strings.ToUpper(stem)]
}

// hasTrailingDotOrSpace reports whether name ends in a dot or a space.
// Win32 path normalization strips those, so the file cannot be opened by
// its real name.
func hasTrailingDotOrSpace(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	last := name[len(name)-1]
	return last == '.' || last == ' '
}

// needsRawDelete reports whether the entry has to be removed through the
// extended-length namespace rather than a normal delete.
func needsRawDelete(name string) bool {
	return isReservedName(name) || hasTrailingDotOrSpace(name)
}
