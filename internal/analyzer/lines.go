package analyzer

import "fmt"

// Summarize returns the fixed one-line summary for content.
func Summarize(content string) string {
	return fmt.Sprintf("File with %d lines.", CountLines(content))
}

// CountLines counts lines split on universal line boundaries: \n, \r\n, \r,
// \v, \f, \x1c, \x1d, \x1e, \x85, U+2028 and U+2029. A trailing terminator
// does not open a new line and empty content has zero lines.
func CountLines(content string) int {
	n := 0
	pending := false
	prevCR := false
	for _, r := range content {
		if prevCR && r == '\n' {
			prevCR = false
			continue
		}
		prevCR = r == '\r'
		if isLineBoundary(r) {
			n++
			pending = false
			continue
		}
		pending = true
	}
	if pending {
		n++
	}
	return n
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
