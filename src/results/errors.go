package results

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrColumnNotFound is matched by every *ColumnError.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNoRows is returned when a results file has a header but no data rows.
	ErrNoRows = errors.New("results file has no data rows")
	// ErrUnsupportedFormat is returned for source files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported results format")
)

// ColumnError reports a column that a row (or header) does not carry.
type ColumnError struct {
	Line   int
	Column string
}

func (e *ColumnError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: column %q not found", e.Line, e.Column)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *ColumnError) Is(target error) bool { return target == ErrColumnNotFound }

// ParseError reports a cell that is not a valid number.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
