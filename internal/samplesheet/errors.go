package samplesheet

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes manifest validation failures.
type ErrorCode string

const (
	// ErrCodeHeaderMissing indicates a required column is absent from the
	// manifest header row.
	ErrCodeHeaderMissing ErrorCode = "HEADER_MISSING"

	// ErrCodeHeaderUnexpected indicates a column not in the expected set
	// (strict mode only), or a preamble column row that contradicts the
	// canonical output columns.
	ErrCodeHeaderUnexpected ErrorCode = "HEADER_UNEXPECTED"

	// ErrCodeEmptyCell indicates a required cell is blank.
	ErrCodeEmptyCell ErrorCode = "EMPTY_CELL"

	// ErrCodeUnknownIndex indicates an index name not defined by the
	// active index kit.
	ErrCodeUnknownIndex ErrorCode = "UNKNOWN_INDEX"

	// ErrCodeDuplicateIndexPair indicates two samples share the same
	// (i7, i5) index pair and cannot be demultiplexed apart.
	ErrCodeDuplicateIndexPair ErrorCode = "DUPLICATE_INDEX_PAIR"
)

// Error is a validation failure with structured row/column context.
//
// Row is the 1-based data row number (the header row is not counted);
// it is zero for header-level errors.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Row     int       `json:"row,omitempty"`
	Column  string    `json:"column,omitempty"`
	Value   string    `json:"value,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail())
}

// Detail returns the message with row/column context, without the code.
func (e *Error) Detail() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("row %d, column %s: %s", e.Row, e.Column, e.Message)
	case e.Row > 0:
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	case e.Column != "":
		return fmt.Sprintf("column %s: %s", e.Column, e.Message)
	default:
		return e.Message
	}
}

// IsHeaderError reports whether err is a header validation failure.
// Uses errors.As to handle wrapped errors.
func IsHeaderError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCodeHeaderMissing || e.Code == ErrCodeHeaderUnexpected
	}
	return false
}

// IsEmptyCellError reports whether err is a blank-cell failure.
func IsEmptyCellError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeEmptyCell
}

// IsIndexError reports whether err is a sequencing-index failure.
func IsIndexError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCodeUnknownIndex || e.Code == ErrCodeDuplicateIndexPair
	}
	return false
}

// newHeaderMissing builds the error for a required column absent from the
// manifest header row.
func newHeaderMissing(column string) *Error {
	return &Error{
		Code:    ErrCodeHeaderMissing,
		Message: "required column is missing from the manifest header",
		Column:  column,
	}
}

func newHeaderUnexpected(column string) *Error {
	return &Error{
		Code:    ErrCodeHeaderUnexpected,
		Message: "column is not part of the expected header set",
		Column:  column,
	}
}

func newEmptyCell(row int, column string) *Error {
	return &Error{
		Code:    ErrCodeEmptyCell,
		Message: "required cell is empty",
		Row:     row,
		Column:  column,
	}
}

func newUnknownIndex(row int, column, value, kitName string) *Error {
	return &Error{
		Code:    ErrCodeUnknownIndex,
		Message: fmt.Sprintf("index %q is not defined in kit %q", value, kitName),
		Row:     row,
		Column:  column,
		Value:   value,
	}
}

func newDuplicateIndexPair(row, firstRow int, i7, i5 string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateIndexPair,
		Message: fmt.Sprintf("index pair (%s, %s) already used by row %d", i7, i5, firstRow),
		Row:     row,
		Value:   i7 + "+" + i5,
	}
}
