// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"errors"
	"fmt"
)

// errNotRegularFile is wrapped in a FileAccessError when the path names a
// directory or device instead of a file.
var errNotRegularFile = errors.New("not a regular file")

// FileAccessError reports that the PDF could not be opened: the path is
// missing, unreadable, permission-denied, or not a regular file.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports that the PDF library could not produce a page tree
// or the text of a page.
type ParseError struct {
	Path string
	// Page is the 1-based page that failed, or 0 when the document itself
	// could not be read.
	Page int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("cannot parse %s (page %d): %v", e.Path, e.Page, e.Err)
	}
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
