package common

import (
	"strings"
)

// SplitSources expands repeated and comma-separated source flags into a
// flat list, dropping blanks.
func SplitSources(values []string) []string {
	var sources []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			sources = append(sources, part)
		}
	}
	return sources
}
