package indexkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKitValid(t *testing.T) {
	kit := Default()
	require.NoError(t, kit.Validate())
	assert.Equal(t, DefaultKitName, kit.Name)
	assert.Len(t, kit.Indexes, 20)
}

func TestDefaultKitKnownEntries(t *testing.T) {
	kit := Default()

	seq, ok := kit.Sequence("P7_i1")
	require.True(t, ok)
	assert.Equal(t, "TAAGGCGA", seq)

	seq, ok = kit.Sequence("P5_i20")
	require.True(t, ok)
	assert.Equal(t, "AGGCTTAG", seq)

	_, ok = kit.Sequence("P7_i99")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	kit := &Kit{
		Name: "tiny",
		Indexes: map[string]string{
			"b": "AAAACCCC",
			"a": "GGGGTTTT",
		},
	}
	assert.Equal(t, []string{"a", "b"}, kit.Names())
}

func TestValidateRejectsBadLength(t *testing.T) {
	kit := &Kit{Name: "bad", Indexes: map[string]string{"x": "ACGT"}}
	err := kit.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length 4")
}

func TestValidateRejectsBadAlphabet(t *testing.T) {
	kit := &Kit{Name: "bad", Indexes: map[string]string{"x": "ACGTACGN"}}
	err := kit.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"N"`)
}

func TestValidateRejectsDuplicateSequence(t *testing.T) {
	kit := &Kit{
		Name: "bad",
		Indexes: map[string]string{
			"x": "ACGTACGT",
			"y": "ACGTACGT",
		},
	}
	err := kit.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share sequence")
}

func TestValidateRejectsEmptyKit(t *testing.T) {
	kit := &Kit{Name: "empty"}
	require.Error(t, kit.Validate())

	kit = &Kit{Indexes: map[string]string{"x": "ACGTACGT"}}
	require.Error(t, kit.Validate())
}
