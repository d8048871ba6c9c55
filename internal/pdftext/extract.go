// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the plain text of a PDF document, page by page,
// in document order. Layout reconstruction is whatever the underlying PDF
// library produces; no correction is layered on top.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/study-triage/internal/log"
)

// Extractor turns a PDF file into plain text. Different backends can
// implement this interface; PDFExtractor is the production one.
type Extractor interface {
	// Extract reads the PDF at path and returns the text of all pages that
	// have any, joined with newlines.
	Extract(path string) (string, error)
}

// PageSource is a parsed document that yields text one page at a time.
// Pages are numbered from 1.
type PageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

// PDFExtractor extracts text with github.com/ledongthuc/pdf.
type PDFExtractor struct {
	log log.Logger
}

// NewPDFExtractor returns an extractor that reports progress to logger.
// A nil logger discards diagnostics.
func NewPDFExtractor(logger log.Logger) *PDFExtractor {
	if logger == nil {
		logger = log.Nop()
	}
	return &PDFExtractor{log: logger}
}

// Extract opens path, parses it, and returns the concatenated page text.
// Open failures are returned as *FileAccessError; anything the PDF library
// rejects, including a panic inside it, is returned as *ParseError. The
// file is closed before Extract returns.
func (x *PDFExtractor) Extract(path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &FileAccessError{Path: path, Err: errNotRegularFile}
	}

	// ledongthuc/pdf panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ParseError{Path: path, Err: fmt.Errorf("pdf reader panic: %v", r)}
		}
	}()

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", &ParseError{Path: path, Err: err}
	}

	x.log.Debugf("opened %s (%d bytes)", path, info.Size())
	return x.joinPages(path, documentPages{r: r})
}

// joinPages collects the text of every page of src that produced any,
// separated by a single newline. Pages without text are skipped; a
// document where no page has text yields the empty string.
func (x *PDFExtractor) joinPages(path string, src PageSource) (string, error) {
	total := src.NumPage()
	texts := make([]string, 0, total)

	for n := 1; n <= total; n++ {
		t, err := src.PageText(n)
		if err != nil {
			return "", &ParseError{Path: path, Page: n, Err: err}
		}
		if t == "" {
			x.log.Debugf("page %d/%d: no text", n, total)
			continue
		}
		texts = append(texts, t)
	}

	x.log.Infof("extracted text from %d of %d pages in %s", len(texts), total, path)
	return strings.Join(texts, "\n"), nil
}

// documentPages adapts a ledongthuc/pdf reader to PageSource.
type documentPages struct {
	r *pdf.Reader
}

func (d documentPages) NumPage() int { return d.r.NumPage() }

// PageText returns the plain text of page n. A page missing from the page
// tree has no text.
func (d documentPages) PageText(n int) (string, error) {
	p := d.r.Page(n)
	if p.V.IsNull() {
		return "", nil
	}
	return p.GetPlainText(nil)
}
