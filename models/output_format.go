package models

import (
	"fmt"
	"strings"
)

// OutputFormat selects how reports are written to stdout.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // Human-readable lines (default)
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
)

// ParseOutputFormat resolves a user-supplied format name.
// An empty name means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatYAML, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, yaml, json or csv)", s)
	}
}
