package samplesheet

import (
	"fmt"
	"strings"

	"github.com/seqops/sheetforge/internal/input"
)

// Manifest column names the input must carry. Order matters for error
// reporting only; the manifest may list them in any order.
var RequiredColumns = []string{"SampleID", "Name", "Index1Name", "Index2Name"}

// OutputColumns is the canonical Data-section header row bcl2fastq expects.
var OutputColumns = []string{"Sample_ID", "Sample_Name", "I7_Index_ID", "index", "I5_Index_ID", "index2"}

// ManifestRow is one sample from the input manifest. Read-only after parse.
type ManifestRow struct {
	SampleID   string
	Name       string
	Index1Name string
	Index2Name string
}

// Record is one Data-section row of the generated samplesheet, with index
// names resolved to barcode sequences.
type Record struct {
	SampleID   string
	SampleName string
	I7IndexID  string
	Index      string
	I5IndexID  string
	Index2     string
}

// fields returns the record cells in OutputColumns order.
func (r Record) fields() []string {
	return []string{r.SampleID, r.SampleName, r.I7IndexID, r.Index, r.I5IndexID, r.Index2}
}

// Sheet is the in-memory samplesheet: the run preamble followed by the
// ordered, validated records.
type Sheet struct {
	Preamble *Preamble
	Records  []Record
}

// RowsFromTable projects a parsed manifest table onto ManifestRows using a
// header-to-index map. Headers must already have passed ValidateHeaders;
// a missing required column here is a programming error, not user input.
func RowsFromTable(t *input.Table) ([]ManifestRow, error) {
	colIdx := make(map[string]int, len(RequiredColumns))
	for _, want := range RequiredColumns {
		found := false
		for i, got := range t.Columns {
			if strings.EqualFold(want, got) {
				colIdx[want] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("manifest %s: required column %q not found", t.Path, want)
		}
	}

	rows := make([]ManifestRow, 0, len(t.Rows))
	for _, cells := range t.Rows {
		rows = append(rows, ManifestRow{
			SampleID:   strings.TrimSpace(cells[colIdx["SampleID"]]),
			Name:       strings.TrimSpace(cells[colIdx["Name"]]),
			Index1Name: strings.TrimSpace(cells[colIdx["Index1Name"]]),
			Index2Name: strings.TrimSpace(cells[colIdx["Index2Name"]]),
		})
	}
	return rows, nil
}
