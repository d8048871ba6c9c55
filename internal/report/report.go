// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an extraction result for a reader: a numbered
// plain-text listing per category, or the same data as YAML or JSON for
// other tools.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/study-triage/pkg/types"
)

// noMention is printed under a category heading when nothing matched.
const noMention = "No mention found."

// Entry is one category block of a YAML or JSON report.
type Entry struct {
	Category string   `json:"category" yaml:"category"`
	Matches  []string `json:"matches" yaml:"matches"`
}

// Render writes result to w in the requested format. Categories appear in
// result order.
func Render(w io.Writer, result *types.ExtractionResult, format types.OutputFormat) error {
	switch format {
	case types.FormatText, "":
		return RenderText(w, result)
	case types.FormatYAML:
		return RenderYAML(w, result)
	case types.FormatJSON:
		return RenderJSON(w, result)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

// RenderText writes one block per category:
//
//	=== Population ===
//	1. first matching line
//	2. second matching line
//
// A category with no matches gets the line "No mention found." instead of
// a list. Every block, including the last, ends with a blank line.
func RenderText(w io.Writer, result *types.ExtractionResult) error {
	bw := bufio.NewWriter(w)
	for _, c := range result.Categories {
		fmt.Fprintf(bw, "=== %s ===\n", c.Category)
		if len(c.Lines) == 0 {
			fmt.Fprintln(bw, noMention)
		}
		for i, line := range c.Lines {
			fmt.Fprintf(bw, "%d. %s\n", i+1, line)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// RenderYAML writes the result as a YAML list of entries.
func RenderYAML(w io.Writer, result *types.ExtractionResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries(result)); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// RenderJSON writes the result as an indented JSON array of entries.
func RenderJSON(w io.Writer, result *types.ExtractionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries(result)); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// RenderTable lists each category of table with its keywords, one category
// per line, in table order.
func RenderTable(w io.Writer, table types.CategoryTable) error {
	bw := bufio.NewWriter(w)
	for _, c := range table {
		fmt.Fprintf(bw, "%s: %s\n", c.Name, strings.Join(c.Keywords, ", "))
	}
	return bw.Flush()
}

// entries flattens result into export entries. Matches is never nil so
// empty categories encode as [] rather than null.
func entries(result *types.ExtractionResult) []Entry {
	out := make([]Entry, len(result.Categories))
	for i, c := range result.Categories {
		matches := c.Lines
		if matches == nil {
			matches = []string{}
		}
		out[i] = Entry{Category: c.Category, Matches: matches}
	}
	return out
}
