// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CategoryMatches holds the lines recorded for one category.
type CategoryMatches struct {
	// Category is the category name from the table.
	Category string `json:"category" yaml:"category"`

	// Lines are the trimmed matching lines in document order. Never nil.
	Lines []string `json:"matches" yaml:"matches"`
}

// ExtractionResult maps every category of a table to its matched lines.
// Entries follow table order and there is exactly one entry per category,
// including categories with no matches.
type ExtractionResult struct {
	Categories []CategoryMatches `json:"categories" yaml:"categories"`
}

// NewExtractionResult returns a result with one empty entry per category
// in table.
func NewExtractionResult(table CategoryTable) *ExtractionResult {
	r := &ExtractionResult{Categories: make([]CategoryMatches, len(table))}
	for i, c := range table {
		r.Categories[i] = CategoryMatches{Category: c.Name, Lines: []string{}}
	}
	return r
}

// Lines returns the matches recorded for name, and whether the category
// exists in the result.
func (r *ExtractionResult) Lines(name string) ([]string, bool) {
	for _, c := range r.Categories {
		if c.Category == name {
			return c.Lines, true
		}
	}
	return nil, false
}

// Keys returns the category names in result order.
func (r *ExtractionResult) Keys() []string {
	keys := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		keys[i] = c.Category
	}
	return keys
}

// Total returns the number of recorded matches across all categories.
// A line recorded under two categories counts twice.
func (r *ExtractionResult) Total() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Lines)
	}
	return n
}
