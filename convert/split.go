package convert

import "strings"

// SplitAndTidy splits a comma-separated cell into trimmed values, dropping
// empties. An empty cell yields an empty, non-nil slice. Values containing
// commas cannot be represented; there is no quoting.
func SplitAndTidy(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
