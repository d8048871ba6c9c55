package types

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a flag or config value into an OutputFormat.
// The empty string selects FormatText.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use text, yaml, or json", s)
	}
}

// Config holds the settings for a scan run, resolved from flags, the
// config file, and STUDY_TRIAGE_* environment variables.
type Config struct {
	// CategoriesFile is an optional YAML category table. Empty selects the
	// built-in table.
	CategoriesFile string `json:"categories" yaml:"categories"`

	// Match selects substring or word matching.
	Match MatchMode `json:"match" yaml:"match"`

	// Format selects the report rendering.
	Format OutputFormat `json:"format" yaml:"format"`

	// LogLevel is the diagnostic log level: debug, info, warn, or error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}
