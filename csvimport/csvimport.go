// Package csvimport validates CSV files against a declared column layout
// before import.
//
// [ValidateFile] checks that every declared column is present in the CSV
// header row and reports the headers that are present but undeclared, so
// the importer can warn about columns it will ignore.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// TypeSelectMultiple is the column type of multi-select questions. Their
// values are spread over per-choice columns, so the declared column itself
// is allowed to be absent from the header row.
const TypeSelectMultiple = "select all that apply"

// Sentinel errors returned by [ValidateFile]. Wrap sites add context;
// callers discriminate with [errors.Is].
var (
	// ErrInvalidFile is returned when the CSV cannot be opened or its
	// header row cannot be read.
	ErrInvalidFile = errors.New("csv file failed validation")

	// ErrMissingColumns is returned when declared columns are absent from
	// the header row; the message lists the missing names.
	ErrMissingColumns = errors.New("csv is missing columns")
)

// ValidateFile opens the CSV at path and validates its header row against
// columns, a column-name to type-string mapping.
//
// Every declared column must appear in the header, except columns of
// [TypeSelectMultiple]. On success it returns the additional headers: those
// present in the CSV but not declared, skipping multi-select expansion
// columns (headers containing "["), in header order.
func ValidateFile(path string, columns map[string]string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	headers, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading headers: %w", ErrInvalidFile, err)
	}

	var missing []string

	for column, typ := range columns {
		if typ == TypeSelectMultiple {
			continue
		}

		if !slices.Contains(headers, column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var additional []string

	for _, header := range headers {
		if _, declared := columns[header]; declared {
			continue
		}

		if strings.Contains(header, "[") {
			continue
		}

		additional = append(additional, header)
	}

	return additional, nil
}
