package parser

import "strings"

// SplitLines breaks text into lines and reports whether it ended with a
// newline. Line terminators are dropped; a trailing "\r" of CRLF input stays
// on its line so untouched lines round-trip byte for byte.
func SplitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailing := strings.HasSuffix(content, "\n")
	body := strings.TrimSuffix(content, "\n")
	return strings.Split(body, "\n"), trailing
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string, trailingNewline bool) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}
