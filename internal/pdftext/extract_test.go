// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/study-triage/internal/log"
)

// fakePages implements PageSource with canned page texts. A non-nil entry
// in errs fails the page with the same index.
type fakePages struct {
	texts []string
	errs  map[int]error
}

func (f *fakePages) NumPage() int { return len(f.texts) }

func (f *fakePages) PageText(n int) (string, error) {
	if err, ok := f.errs[n]; ok {
		return "", err
	}
	return f.texts[n-1], nil
}

// writePDF generates a PDF with one page per entry in pages and returns
// its path. An empty entry produces a page with no text.
func writePDF(t *testing.T, pages ...string) string {
	t.Helper()

	doc := fpdf.New("P", "mm", "A4", "")
	for _, text := range pages {
		doc.AddPage()
		if text == "" {
			continue
		}
		doc.SetFont("Helvetica", "", 12)
		doc.Cell(40, 10, text)
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))

	path := filepath.Join(t.TempDir(), "study.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "single page",
			pages: []string{"Methods\nWe enrolled 120 participants."},
			want:  "Methods\nWe enrolled 120 participants.",
		},
		{
			name:  "pages joined in order",
			pages: []string{"page one", "page two", "page three"},
			want:  "page one\npage two\npage three",
		},
		{
			name:  "empty pages skipped",
			pages: []string{"", "abstract", "", "", "results", ""},
			want:  "abstract\nresults",
		},
		{
			name:  "whitespace-only page kept",
			pages: []string{"a", "  ", "b"},
			want:  "a\n  \nb",
		},
		{
			name:  "all pages empty",
			pages: []string{"", "", ""},
			want:  "",
		},
		{
			name:  "no pages",
			pages: nil,
			want:  "",
		},
	}

	x := NewPDFExtractor(log.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := x.joinPages("doc.pdf", &fakePages{texts: tt.pages})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinPagesPageError(t *testing.T) {
	cause := errors.New("unknown font encoding")
	src := &fakePages{
		texts: []string{"first", "second", "third"},
		errs:  map[int]error{2: cause},
	}

	got, err := NewPDFExtractor(nil).joinPages("doc.pdf", src)
	require.Error(t, err)
	assert.Empty(t, got, "no partial text on failure")

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Page)
	assert.Equal(t, "doc.pdf", perr.Path)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "page 2")
}

func TestExtract(t *testing.T) {
	path := writePDF(t,
		"Patients completed the PHQ-9 questionnaire",
		"",
		"The dropout rate was 12 percent",
	)

	text, err := NewPDFExtractor(log.Nop()).Extract(path)
	require.NoError(t, err)

	first := strings.Index(text, "PHQ-9 questionnaire")
	last := strings.Index(text, "dropout rate")
	require.GreaterOrEqual(t, first, 0, "page 1 text missing from %q", text)
	require.GreaterOrEqual(t, last, 0, "page 3 text missing from %q", text)
	assert.Less(t, first, last, "pages should be concatenated in document order")
}

func TestExtractBlankPages(t *testing.T) {
	path := writePDF(t, "", "")

	text, err := NewPDFExtractor(log.Nop()).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestExtractFileAccessErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		target error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.pdf")
			},
			target: fs.ErrNotExist,
		},
		{
			name: "directory",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			target: errNotRegularFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			_, err := NewPDFExtractor(log.Nop()).Extract(path)
			require.Error(t, err)

			var ferr *FileAccessError
			require.True(t, errors.As(err, &ferr), "got %T: %v", err, err)
			assert.Equal(t, path, ferr.Path)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestExtractParseErrors(t *testing.T) {
	valid, err := os.ReadFile(writePDF(t, "Results"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		content []byte
	}{
		{name: "not a pdf", content: []byte("this is a plain text file, not a PDF")},
		{name: "empty file", content: nil},
		{name: "truncated pdf", content: valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.pdf")
			require.NoError(t, os.WriteFile(path, tt.content, 0o644))

			text, err := NewPDFExtractor(log.Nop()).Extract(path)
			require.Error(t, err)
			assert.Empty(t, text)

			var perr *ParseError
			require.True(t, errors.As(err, &perr), "got %T: %v", err, err)
			assert.Equal(t, path, perr.Path)

			var ferr *FileAccessError
			assert.False(t, errors.As(err, &ferr))
		})
	}
}
