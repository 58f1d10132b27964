package samplesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqops/sheetforge/internal/indexkit"
)

func TestValidateHeadersValid(t *testing.T) {
	got := []string{"SampleID", "Name", "Index1Name", "Index2Name"}
	errs := ValidateHeaders(got, RequiredColumns, false)
	assert.Empty(t, errs)
}

func TestValidateHeadersCaseInsensitive(t *testing.T) {
	got := []string{"sampleid", "NAME", "index1name", "Index2Name"}
	errs := ValidateHeaders(got, RequiredColumns, false)
	assert.Empty(t, errs)
}

func TestValidateHeadersMissingColumn(t *testing.T) {
	got := []string{"SampleID", "Name", "Index1Name"}
	errs := ValidateHeaders(got, RequiredColumns, false)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeHeaderMissing, errs[0].Code)
	assert.Equal(t, "Index2Name", errs[0].Column)
}

func TestValidateHeadersCollectsAllMissing(t *testing.T) {
	errs := ValidateHeaders([]string{"SampleID"}, RequiredColumns, false)
	require.Len(t, errs, 3)
	for _, e := range errs {
		assert.Equal(t, ErrCodeHeaderMissing, e.Code)
	}
}

func TestValidateHeadersSubsetAllowsExtras(t *testing.T) {
	got := []string{"SampleID", "Name", "Index1Name", "Index2Name", "Project", "Lane"}
	errs := ValidateHeaders(got, RequiredColumns, false)
	assert.Empty(t, errs)
}

func TestValidateHeadersStrictRejectsExtras(t *testing.T) {
	got := []string{"SampleID", "Name", "Index1Name", "Index2Name", "Project"}
	errs := ValidateHeaders(got, RequiredColumns, true)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeHeaderUnexpected, errs[0].Code)
	assert.Equal(t, "Project", errs[0].Column)
}

func validRows() []ManifestRow {
	return []ManifestRow{
		{SampleID: "S1", Name: "Alpha", Index1Name: "P7_i1", Index2Name: "P5_i13"},
		{SampleID: "S2", Name: "Beta", Index1Name: "P7_i2", Index2Name: "P5_i14"},
	}
}

func TestValidateRowsValid(t *testing.T) {
	errs := ValidateRows(validRows(), indexkit.Default())
	assert.Empty(t, errs)
}

func TestValidateRowsEmptyCell(t *testing.T) {
	rows := validRows()
	rows[1].Name = "  "

	errs := ValidateRows(rows, indexkit.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeEmptyCell, errs[0].Code)
	assert.Equal(t, 2, errs[0].Row)
	assert.Equal(t, "Name", errs[0].Column)
}

func TestValidateRowsUnknownIndex(t *testing.T) {
	rows := validRows()
	rows[0].Index2Name = "P5_i99"

	errs := ValidateRows(rows, indexkit.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeUnknownIndex, errs[0].Code)
	assert.Equal(t, 1, errs[0].Row)
	assert.Equal(t, "Index2Name", errs[0].Column)
	assert.Equal(t, "P5_i99", errs[0].Value)
}

func TestValidateRowsDuplicateIndexPair(t *testing.T) {
	rows := validRows()
	rows[1].Index1Name = rows[0].Index1Name
	rows[1].Index2Name = rows[0].Index2Name

	errs := ValidateRows(rows, indexkit.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeDuplicateIndexPair, errs[0].Code)
	assert.Equal(t, 2, errs[0].Row)
	assert.Contains(t, errs[0].Message, "row 1")
}

func TestValidateRowsSameIndexesDifferentPairOK(t *testing.T) {
	// Reusing one index name across samples is fine as long as the pair differs.
	rows := []ManifestRow{
		{SampleID: "S1", Name: "Alpha", Index1Name: "P7_i1", Index2Name: "P5_i13"},
		{SampleID: "S2", Name: "Beta", Index1Name: "P7_i1", Index2Name: "P5_i14"},
	}
	errs := ValidateRows(rows, indexkit.Default())
	assert.Empty(t, errs)
}

func TestValidateRowsCollectsAll(t *testing.T) {
	rows := []ManifestRow{
		{SampleID: "", Name: "Alpha", Index1Name: "P7_i1", Index2Name: "P5_i13"},
		{SampleID: "S2", Name: "Beta", Index1Name: "BOGUS", Index2Name: "P5_i14"},
	}
	errs := ValidateRows(rows, indexkit.Default())
	require.Len(t, errs, 2)
	assert.Equal(t, ErrCodeEmptyCell, errs[0].Code)
	assert.Equal(t, ErrCodeUnknownIndex, errs[1].Code)
}

func TestValidateRowsEmptyIndexNotDoubleReported(t *testing.T) {
	// A blank index cell is an EMPTY_CELL, not also an UNKNOWN_INDEX.
	rows := []ManifestRow{
		{SampleID: "S1", Name: "Alpha", Index1Name: "", Index2Name: "P5_i13"},
	}
	errs := ValidateRows(rows, indexkit.Default())
	require.Len(t, errs, 1)
	assert.Equal(t, ErrCodeEmptyCell, errs[0].Code)
}
