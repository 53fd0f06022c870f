// Package ansi strips terminal control sequences from streamed output so
// that failure patterns match against plain text.
package ansi

import "regexp"

// csiPattern matches ANSI CSI sequences: ESC, '[', zero or more parameter
// bytes (digits and ';'), and exactly one final letter. This is the shape
// used for cursor movement, colors, and erase controls.
var csiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Strip removes CSI escape sequences from a chunk of terminal output.
// Everything else passes through unchanged, including newlines and
// non-ASCII text. Strip is stateless per chunk: a sequence split across
// two chunks is not stripped, and malformed sequences are left intact.
func Strip(chunk string) string {
	return csiPattern.ReplaceAllString(chunk, "")
}
