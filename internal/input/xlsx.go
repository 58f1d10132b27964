package input

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first worksheet of an Excel manifest. Trailing
// empty cells dropped by the XLSX format are padded back to header width.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("parse %s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse %s: sheet %q is empty", path, sheet)
	}

	return normalize(&Table{
		Path:    path,
		Columns: rows[0],
		Rows:    rows[1:],
	}), nil
}
