package record

import "strings"

const (
	methodSeparator  = "|"
	escapedSeparator = "@"
)

// EscapeMethod makes a chunking method usable as a single path segment.
func EscapeMethod(method string) string {
	return strings.ReplaceAll(method, methodSeparator, escapedSeparator)
}

// DisplayLabel turns an escaped method into a multi-line chart label,
// one line per original pipe-separated segment.
func DisplayLabel(escaped string) string {
	return strings.ReplaceAll(escaped, escapedSeparator, "\n")
}

// DisplayLabels applies DisplayLabel to every method, keeping order.
func DisplayLabels(escaped []string) []string {
	out := make([]string, len(escaped))
	for i, m := range escaped {
		out[i] = DisplayLabel(m)
	}
	return out
}
