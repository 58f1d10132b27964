package samplesheet

import (
	"strings"

	"github.com/seqops/sheetforge/internal/indexkit"
)

// ValidateHeaders checks the manifest header row against the expected
// column set. Matching is case-insensitive. Returns all errors found
// (does not fail fast).
//
// In subset mode (strict=false) the manifest may carry extra columns;
// they are ignored by the build. In strict mode any column outside the
// expected set is an error.
func ValidateHeaders(got, want []string, strict bool) []*Error {
	var errs []*Error

	for _, w := range want {
		if !containsFold(got, w) {
			errs = append(errs, newHeaderMissing(w))
		}
	}

	if strict {
		for _, g := range got {
			if !containsFold(want, g) {
				errs = append(errs, newHeaderUnexpected(g))
			}
		}
	}

	return errs
}

// ValidateRows checks every manifest row for blank required cells,
// index names unknown to the kit, and duplicate (i7, i5) index pairs.
// Returns all errors found; row numbers are 1-based data rows.
func ValidateRows(rows []ManifestRow, kit *indexkit.Kit) []*Error {
	var errs []*Error

	// First data row where each (i7, i5) pair was seen.
	pairSeen := make(map[string]int, len(rows))

	for i, row := range rows {
		n := i + 1

		cells := []struct {
			column string
			value  string
		}{
			{"SampleID", row.SampleID},
			{"Name", row.Name},
			{"Index1Name", row.Index1Name},
			{"Index2Name", row.Index2Name},
		}
		for _, c := range cells {
			if strings.TrimSpace(c.value) == "" {
				errs = append(errs, newEmptyCell(n, c.column))
			}
		}

		if row.Index1Name != "" && !kit.Has(row.Index1Name) {
			errs = append(errs, newUnknownIndex(n, "Index1Name", row.Index1Name, kit.Name))
		}
		if row.Index2Name != "" && !kit.Has(row.Index2Name) {
			errs = append(errs, newUnknownIndex(n, "Index2Name", row.Index2Name, kit.Name))
		}

		// Pair uniqueness is checked on names: two samples with the same
		// (i7, i5) pair cannot be told apart during demultiplexing.
		if row.Index1Name != "" && row.Index2Name != "" {
			pair := row.Index1Name + "\x00" + row.Index2Name
			if first, dup := pairSeen[pair]; dup {
				errs = append(errs, newDuplicateIndexPair(n, first, row.Index1Name, row.Index2Name))
			} else {
				pairSeen[pair] = n
			}
		}
	}

	return errs
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
