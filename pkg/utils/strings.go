package utils

import "strings"

// SplitList splits a comma-separated value, trimming whitespace and dropping
// empty items.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return TrimAll(strings.Split(s, ","))
}

// TrimAll trims whitespace of every item and drops the empty ones.
func TrimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
