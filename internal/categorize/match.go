// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package categorize flags lines of extracted document text that mention
// a research-reporting category, by keyword containment.
package categorize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/study-triage/pkg/types"
)

// Matcher scans text against a category table. It holds no state between
// calls, so the same Matcher may be reused for any number of documents.
type Matcher struct {
	table    types.CategoryTable
	mode     types.MatchMode
	keywords [][]string // lower-cased keywords, indexed like table
}

// NewMatcher prepares table for matching in the given mode. The table is
// copied; later changes to the caller's slice have no effect. Empty
// keywords are ignored so that an empty line can never match.
func NewMatcher(table types.CategoryTable, mode types.MatchMode) *Matcher {
	m := &Matcher{
		table:    table.Clone(),
		mode:     mode,
		keywords: make([][]string, len(table)),
	}
	lower := cases.Lower(language.Und)
	for i, c := range m.table {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw == "" {
				continue
			}
			kws = append(kws, lower.String(kw))
		}
		m.keywords[i] = kws
	}
	return m
}

// Match substring-matches text against table. It is shorthand for
// NewMatcher(table, types.MatchSubstring).Match(text).
func Match(text string, table types.CategoryTable) *types.ExtractionResult {
	return NewMatcher(table, types.MatchSubstring).Match(text)
}

// Table returns a copy of the table the matcher was built with.
func (m *Matcher) Table() types.CategoryTable {
	return m.table.Clone()
}

// Match splits text on newlines and records each line under every
// category with at least one matching keyword. Within a category the first
// matching keyword wins, so a line is recorded at most once per category;
// it may still be recorded under several categories. Recorded lines are
// trimmed of surrounding whitespace but otherwise kept as written.
//
// The result has one entry per table category, in table order, even when
// nothing matched.
func (m *Matcher) Match(text string) *types.ExtractionResult {
	result := types.NewExtractionResult(m.table)
	lower := cases.Lower(language.Und)

	for _, line := range strings.Split(text, "\n") {
		folded := lower.String(line)
		for i, kws := range m.keywords {
			if m.matchesAny(folded, kws) {
				result.Categories[i].Lines = append(result.Categories[i].Lines, strings.TrimSpace(line))
			}
		}
	}
	return result
}

func (m *Matcher) matchesAny(line string, keywords []string) bool {
	for _, kw := range keywords {
		if m.contains(line, kw) {
			return true
		}
	}
	return false
}

func (m *Matcher) contains(line, kw string) bool {
	if m.mode == types.MatchWord {
		return containsWord(line, kw)
	}
	return strings.Contains(line, kw)
}

// containsWord reports whether kw occurs in line with no letter or digit
// directly before or after it.
func containsWord(line, kw string) bool {
	for start := 0; start <= len(line); {
		i := strings.Index(line[start:], kw)
		if i < 0 {
			return false
		}
		i += start
		if wordBoundaryBefore(line, i) && wordBoundaryAfter(line, i+len(kw)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		start = i + size
	}
	return false
}

func wordBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func wordBoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
