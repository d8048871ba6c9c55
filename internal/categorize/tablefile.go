// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categorize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/study-triage/pkg/types"
)

// TableFile is the on-disk representation of a category table. A
// researcher can dump the built-in table, edit it, and scan with the
// edited copy instead.
//
//	categories:
//	  - name: Study Design
//	    keywords: [study design, methodology]
type TableFile struct {
	Categories types.CategoryTable `yaml:"categories"`
}

// LoadTable reads and validates a category table file.
func LoadTable(path string) (types.CategoryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category table: %w", err)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("category table %s: %w", path, err)
	}
	return table, nil
}

// ParseTable decodes and validates a category table document. Unknown
// fields are rejected so that a misspelt key does not silently drop a
// category's keywords.
func ParseTable(data []byte) (types.CategoryTable, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tf TableFile
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("category table is empty")
		}
		return nil, fmt.Errorf("parsing category table: %w", err)
	}
	if err := tf.Categories.Validate(); err != nil {
		return nil, err
	}
	return tf.Categories, nil
}

// WriteTable writes table in the format LoadTable reads.
func WriteTable(w io.Writer, table types.CategoryTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(TableFile{Categories: table}); err != nil {
		return fmt.Errorf("marshaling category table: %w", err)
	}
	return enc.Close()
}

// ResolveTable returns the table stored at path, or the built-in table
// when path is empty.
func ResolveTable(path string) (types.CategoryTable, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	return LoadTable(path)
}
