package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadCSV parses a CSV manifest. A leading UTF-8 BOM (written by Excel
// and LibreOffice "CSV UTF-8" exports) is stripped so the first header
// name parses clean.
func ReadCSV(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer fh.Close()

	// UTF8BOM consumes a BOM if present and passes UTF-8 through otherwise.
	reader := csv.NewReader(transform.NewReader(fh, unicode.UTF8BOM.NewDecoder()))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: file is empty", path)
	}

	return normalize(&Table{
		Path:    path,
		Columns: records[0],
		Rows:    records[1:],
	}), nil
}

// WriteCSV serializes records to w in CSV form. Used by tests and the
// indexes command; samplesheet rendering has its own writer because of
// the preamble section.
func WriteCSV(w io.Writer, records [][]string) error {
	return csv.NewWriter(w).WriteAll(records)
}
