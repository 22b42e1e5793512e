// Package strings holds small helpers for cleaning model output.
package strings

import (
	"strings"
)

// Lines splits text on newlines and returns the distinct non-blank lines,
// trimmed, in order of first appearance. Lines that differ only in case
// count as the same line; the first spelling wins. A limit above zero stops
// after that many lines.
func Lines(text string, limit int) []string {
	result := make([]string, 0)
	seen := make(map[string]struct{})

	for line := range strings.SplitSeq(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
		if limit > 0 && len(result) == limit {
			break
		}
	}

	return result
}
