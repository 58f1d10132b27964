package samplesheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render serializes the sheet: preamble lines verbatim, then the Data
// column row (unless the preamble already ends with one), then the records.
func (s *Sheet) Render() ([]byte, error) {
	var buf bytes.Buffer

	for _, line := range s.Preamble.Lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	w := csv.NewWriter(&buf)
	if _, hasColumnRow := s.Preamble.columnRow(); !hasColumnRow {
		if err := w.Write(OutputColumns); err != nil {
			return nil, err
		}
	}
	for _, rec := range s.Records {
		if err := w.Write(rec.fields()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile renders the sheet to path, creating missing parent directories.
// The content goes through a temp file in the target directory and a rename,
// so an interrupted or failed write never leaves a partial samplesheet.
func (s *Sheet) WriteFile(path string) error {
	content, err := s.Render()
	if err != nil {
		return fmt.Errorf("render samplesheet: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".samplesheet-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write samplesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write samplesheet: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write samplesheet: %w", err)
	}
	return nil
}

// ParseRecords reads a rendered samplesheet back into records, skipping the
// preamble. Used for round-trip verification.
func ParseRecords(content []byte) ([]Record, error) {
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")

	columnRow := strings.Join(OutputColumns, ",")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == columnRow {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("no %q column row found", OutputColumns[0])
	}

	r := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse data section: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if len(row) != len(OutputColumns) {
			return nil, fmt.Errorf("data row has %d fields, want %d", len(row), len(OutputColumns))
		}
		records = append(records, Record{
			SampleID:   row[0],
			SampleName: row[1],
			I7IndexID:  row[2],
			Index:      row[3],
			I5IndexID:  row[4],
			Index2:     row[5],
		})
	}
	return records, nil
}
