package results

import (
	"strconv"
)

// Row is one record of a results file keyed by header name.
type Row struct {
	// Line is the 1-based physical line (CSV) or sheet row (XLSX) of the record.
	Line  int
	cells map[string]string
}

// NewRow builds a row from already-split cells.
func NewRow(line int, cells map[string]string) Row {
	c := make(map[string]string, len(cells))
	for k, v := range cells {
		c[k] = v
	}
	return Row{Line: line, cells: c}
}

// Get returns the raw cell text for column.
func (r Row) Get(column string) (string, error) {
	v, ok := r.cells[column]
	if !ok {
		return "", &ColumnError{Line: r.Line, Column: column}
	}
	return v, nil
}

// Float parses the cell for column as float64.
func (r Row) Float(column string) (float64, error) {
	s, err := r.Get(column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Line: r.Line, Column: column, Value: s, Err: err}
	}
	return v, nil
}
