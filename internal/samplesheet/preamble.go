package samplesheet

import (
	"fmt"
	"os"
	"strings"
)

// Preamble is the instrument header section ([Header], [Reads], [Settings],
// [Data], ...) prepended verbatim to the generated samplesheet.
type Preamble struct {
	// Path is the headers file the preamble was read from.
	Path string

	// Lines holds the file's lines, newline-stripped, in order.
	Lines []string
}

// LoadPreamble reads a headers file. Trailing blank lines are dropped so
// the Data section starts directly under the preamble.
func LoadPreamble(path string) (*Preamble, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read headers file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("headers file %s is empty", path)
	}

	return &Preamble{Path: path, Lines: lines}, nil
}

// columnRow returns the preamble's trailing Data column row, if it has one.
// Header templates may either stop at the [Data] marker (the builder then
// emits the canonical column row) or spell the column row out themselves.
func (p *Preamble) columnRow() ([]string, bool) {
	last := p.Lines[len(p.Lines)-1]
	fields := strings.Split(last, ",")
	if len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "Sample_ID") {
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields, true
	}
	return nil, false
}
