// Package input reads lab manifest files into a uniform tabular form.
//
// Two on-disk formats are supported, selected by file extension:
//   - CSV (the common case), tolerating the UTF-8 byte-order mark that
//     spreadsheet exports prepend
//   - XLSX, reading the first worksheet
//
// Readers return raw cells only; column and value validation belongs to
// the samplesheet package.
package input

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a parsed manifest: a header row plus data rows, all raw strings.
type Table struct {
	// Path is the file the table was read from, for error context.
	Path string

	// Columns is the header row.
	Columns []string

	// Rows holds the data rows in file order. Every row has exactly
	// len(Columns) cells; short rows are padded with empty strings.
	Rows [][]string
}

// Read parses a manifest file, dispatching on extension.
func Read(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return ReadXLSX(path)
	case ".csv", ".txt":
		return ReadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// normalize pads or trims each row to the header width and trims
// whitespace from header cells.
func normalize(t *Table) *Table {
	for i, c := range t.Columns {
		t.Columns[i] = strings.TrimSpace(c)
	}
	width := len(t.Columns)
	for i, row := range t.Rows {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			t.Rows[i] = padded
		case len(row) > width:
			t.Rows[i] = row[:width]
		}
	}
	return t
}
