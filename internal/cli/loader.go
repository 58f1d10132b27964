package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/seqops/sheetforge/internal/indexkit"
	"github.com/seqops/sheetforge/internal/input"
	"github.com/seqops/sheetforge/internal/samplesheet"
)

// CLI-level error codes for failures outside row/header validation.
const (
	ErrCodeIO  = "IO_ERROR"  // unreadable input, unwritable output
	ErrCodeKit = "KIT_ERROR" // invalid or unreadable index kit file
)

// loadKit returns the index kit for a run: the embedded default, or the
// kit loaded from the given YAML file.
func loadKit(path string) (*indexkit.Kit, error) {
	if path == "" {
		return indexkit.Default(), nil
	}
	return indexkit.LoadYAML(path)
}

// loadManifest reads the input manifest and projects it onto rows, running
// header validation first. Header errors come back in errs; hard read
// failures in err.
func loadManifest(path string, kit *indexkit.Kit, strict bool) (rows []samplesheet.ManifestRow, errs []*samplesheet.Error, err error) {
	table, err := input.Read(path)
	if err != nil {
		return nil, nil, err
	}

	errs = samplesheet.ValidateHeaders(table.Columns, samplesheet.RequiredColumns, strict)
	if len(errs) > 0 {
		return nil, errs, nil
	}

	rows, err = samplesheet.RowsFromTable(table)
	if err != nil {
		return nil, nil, err
	}

	errs = samplesheet.ValidateRows(rows, kit)
	return rows, errs, nil
}

// reportValidationErrors prints every validation error and returns the
// ExitError that aborts the command with exit code 1.
func reportValidationErrors(formatter *OutputFormatter, errs []*samplesheet.Error) error {
	if formatter.Format == "json" {
		result := ValidationResult{Valid: false, Errors: errs}
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    string(errs[0].Code),
				Message: errs[0].Message,
			},
		}
		if err := writeJSON(formatter.Writer, response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, validationSummary(errs))
	}

	for _, e := range errs {
		if err := formatter.Error(string(e.Code), e.Detail(), nil); err != nil {
			return err
		}
	}
	return NewExitError(ExitFailure, validationSummary(errs))
}

// ValidationResult holds validation results for JSON output.
type ValidationResult struct {
	Valid  bool                 `json:"valid"`
	Errors []*samplesheet.Error `json:"errors,omitempty"`
}

func validationSummary(errs []*samplesheet.Error) string {
	return fmt.Sprintf("validation failed with %d error(s)", len(errs))
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
