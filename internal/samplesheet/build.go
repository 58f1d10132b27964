package samplesheet

import (
	"fmt"

	"github.com/seqops/sheetforge/internal/indexkit"
)

// Build transforms validated manifest rows into a samplesheet, resolving
// index names to barcode sequences through the kit and preserving input
// order. Rows must have passed ValidateRows; an unknown index name here
// is reported as an error rather than guessed around.
//
// If the preamble spells out its own Data column row, it must match the
// canonical output columns exactly.
func Build(pre *Preamble, rows []ManifestRow, kit *indexkit.Kit) (*Sheet, error) {
	if cols, ok := pre.columnRow(); ok {
		if err := checkPreambleColumns(cols); err != nil {
			return nil, err
		}
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		seq1, ok := kit.Sequence(row.Index1Name)
		if !ok {
			return nil, newUnknownIndex(i+1, "Index1Name", row.Index1Name, kit.Name)
		}
		seq2, ok := kit.Sequence(row.Index2Name)
		if !ok {
			return nil, newUnknownIndex(i+1, "Index2Name", row.Index2Name, kit.Name)
		}
		records = append(records, Record{
			SampleID:   row.SampleID,
			SampleName: row.Name,
			I7IndexID:  row.Index1Name,
			Index:      seq1,
			I5IndexID:  row.Index2Name,
			Index2:     seq2,
		})
	}

	return &Sheet{Preamble: pre, Records: records}, nil
}

func checkPreambleColumns(cols []string) error {
	if len(cols) != len(OutputColumns) {
		return &Error{
			Code: ErrCodeHeaderUnexpected,
			Message: fmt.Sprintf("headers file column row has %d columns, want %d (%v)",
				len(cols), len(OutputColumns), OutputColumns),
		}
	}
	for i, want := range OutputColumns {
		if cols[i] != want {
			return &Error{
				Code:    ErrCodeHeaderUnexpected,
				Column:  cols[i],
				Message: fmt.Sprintf("headers file column %d is %q, want %q", i+1, cols[i], want),
			}
		}
	}
	return nil
}
