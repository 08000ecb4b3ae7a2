package stringsutil

import "strings"

// SplitAndTrim splits s on sep, trims whitespace from every part and drops
// the empty ones. An empty input yields nil.
func SplitAndTrim(s, sep string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
