package samplesheet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	e := newEmptyCell(3, "Name")
	assert.Equal(t, "EMPTY_CELL: row 3, column Name: required cell is empty", e.Error())

	e = newHeaderMissing("Index1Name")
	assert.Equal(t, "HEADER_MISSING: column Index1Name: required column is missing from the manifest header", e.Error())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsHeaderError(newHeaderMissing("Name")))
	assert.True(t, IsHeaderError(newHeaderUnexpected("Lane")))
	assert.True(t, IsEmptyCellError(newEmptyCell(1, "Name")))
	assert.True(t, IsIndexError(newUnknownIndex(1, "Index1Name", "X", "kit")))
	assert.True(t, IsIndexError(newDuplicateIndexPair(2, 1, "P7_i1", "P5_i13")))

	assert.False(t, IsHeaderError(newEmptyCell(1, "Name")))
	assert.False(t, IsEmptyCellError(newHeaderMissing("Name")))
	assert.False(t, IsIndexError(fmt.Errorf("plain")))
}

func TestPredicatesUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("validate manifest: %w", newUnknownIndex(4, "Index2Name", "P5_i99", "kit"))
	assert.True(t, IsIndexError(wrapped))
	assert.False(t, IsEmptyCellError(wrapped))
}
