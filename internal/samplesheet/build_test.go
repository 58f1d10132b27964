package samplesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqops/sheetforge/internal/indexkit"
)

// testPreamble writes the given content as a headers file and loads it.
func testPreamble(t *testing.T, content string) *Preamble {
	t.Helper()
	path := filepath.Join(t.TempDir(), "headers.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	pre, err := LoadPreamble(path)
	require.NoError(t, err)
	return pre
}

const basicHeaders = `[Header]
IEMFileVersion,4
Investigator Name,LabOps
[Reads]
75
75
[Settings]
[Data]
`

func TestBuildResolvesIndexes(t *testing.T) {
	pre := testPreamble(t, basicHeaders)
	sheet, err := Build(pre, validRows(), indexkit.Default())
	require.NoError(t, err)

	require.Len(t, sheet.Records, 2)
	assert.Equal(t, Record{
		SampleID:   "S1",
		SampleName: "Alpha",
		I7IndexID:  "P7_i1",
		Index:      "TAAGGCGA",
		I5IndexID:  "P5_i13",
		Index2:     "GCGATCTA",
	}, sheet.Records[0])
	assert.Equal(t, "CGTACTAG", sheet.Records[1].Index)
	assert.Equal(t, "ATAGAGAG", sheet.Records[1].Index2)
}

func TestBuildPreservesOrder(t *testing.T) {
	pre := testPreamble(t, basicHeaders)
	rows := []ManifestRow{
		{SampleID: "S9", Name: "Last", Index1Name: "P7_i9", Index2Name: "P5_i19"},
		{SampleID: "S1", Name: "First", Index1Name: "P7_i1", Index2Name: "P5_i13"},
	}

	sheet, err := Build(pre, rows, indexkit.Default())
	require.NoError(t, err)
	assert.Equal(t, "S9", sheet.Records[0].SampleID)
	assert.Equal(t, "S1", sheet.Records[1].SampleID)
}

func TestBuildUnknownIndexRejected(t *testing.T) {
	pre := testPreamble(t, basicHeaders)
	rows := []ManifestRow{
		{SampleID: "S1", Name: "Alpha", Index1Name: "NOPE", Index2Name: "P5_i13"},
	}

	_, err := Build(pre, rows, indexkit.Default())
	require.Error(t, err)
	assert.True(t, IsIndexError(err))
}

func TestBuildGolden(t *testing.T) {
	pre := testPreamble(t, basicHeaders)
	sheet, err := Build(pre, validRows(), indexkit.Default())
	require.NoError(t, err)

	content, err := sheet.Render()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "basic", content)
}

func TestBuildPreambleWithColumnRow(t *testing.T) {
	// Templates that spell out the Data column row don't get a duplicate.
	pre := testPreamble(t, basicHeaders+"Sample_ID,Sample_Name,I7_Index_ID,index,I5_Index_ID,index2\n")

	sheet, err := Build(pre, validRows(), indexkit.Default())
	require.NoError(t, err)

	content, err := sheet.Render()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "basic", content)
}

func TestBuildPreambleColumnRowMismatch(t *testing.T) {
	pre := testPreamble(t, basicHeaders+"Sample_ID,Sample_Name,index,index2\n")

	_, err := Build(pre, validRows(), indexkit.Default())
	require.Error(t, err)
	assert.True(t, IsHeaderError(err))
}

func TestRenderRoundTrip(t *testing.T) {
	pre := testPreamble(t, basicHeaders)
	sheet, err := Build(pre, validRows(), indexkit.Default())
	require.NoError(t, err)

	content, err := sheet.Render()
	require.NoError(t, err)

	records, err := ParseRecords(content)
	require.NoError(t, err)
	assert.Equal(t, sheet.Records, records)
}
