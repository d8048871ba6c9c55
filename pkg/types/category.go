// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Category is one research-reporting category and the keywords that flag
// a line as relevant to it.
type Category struct {
	// Name is the category label used as the report heading (e.g. "Study Design").
	Name string `json:"name" yaml:"name"`

	// Keywords are matched case-insensitively against each line, in order.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// CategoryTable is the ordered set of categories a document is scanned
// against. Declaration order determines report order.
type CategoryTable []Category

// Names returns the category names in table order.
func (t CategoryTable) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// Validate checks that the table is usable for matching: at least one
// category, unique non-empty names, and at least one non-blank keyword per
// category. A blank keyword would match every line, including empty ones.
func (t CategoryTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("category table is empty")
	}
	seen := make(map[string]bool, len(t))
	for i, c := range t {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("category %d has no name", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		seen[c.Name] = true

		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", c.Name)
		}
		for j, kw := range c.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("category %q: keyword %d is blank", c.Name, j+1)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers can hand out a table without
// sharing keyword slices.
func (t CategoryTable) Clone() CategoryTable {
	out := make(CategoryTable, len(t))
	for i, c := range t {
		out[i] = Category{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
		}
	}
	return out
}

// MatchMode selects how a keyword is compared against a line.
type MatchMode string

const (
	// MatchSubstring treats a keyword as a plain substring: "age" matches
	// inside "average".
	MatchSubstring MatchMode = "substring"

	// MatchWord requires the keyword occurrence to be bounded by
	// non-alphanumeric characters or the ends of the line.
	MatchWord MatchMode = "word"
)

// ParseMatchMode converts a flag or config value into a MatchMode. The
// empty string selects MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchWord:
		return MatchWord, nil
	default:
		return "", fmt.Errorf("unsupported match mode %q: use substring or word", s)
	}
}
