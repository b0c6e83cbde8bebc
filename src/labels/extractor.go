// Package labels turns a results row into the display label used as an X-axis tick.
//
// Extractors are strategies injected per chart: the same row always yields the same
// label, and a row outside the extractor's domain fails with a typed error instead of
// producing a placeholder tick.
package labels

import (
	"math"
	"strconv"

	"github.com/pkg/errors"

	"github.com/iafilius/ResultPlotter/src/results"
)

// Extractor maps one results row to its display label.
type Extractor func(results.Row) (string, error)

// Int reads column as an integer label. Whole floats such as "5.0" are accepted.
func Int(column string) Extractor {
	return func(r results.Row) (string, error) {
		s, err := r.Get(column)
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return strconv.Itoa(n), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f != math.Trunc(f) {
			if err == nil {
				err = errors.New("not an integer")
			}
			return "", &results.ParseError{Line: r.Line, Column: column, Value: s, Err: err}
		}
		return strconv.FormatInt(int64(f), 10), nil
	}
}

// ScaledInt reads column as a float, multiplies by factor and rounds to the nearest
// integer, halves to even; training set fractions (0.1 .. 0.9) become 1 .. 9 with
// factor 10.
func ScaledInt(column string, factor float64) Extractor {
	return func(r results.Row) (string, error) {
		f, err := r.Float(column)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(int64(math.RoundToEven(f*factor)), 10), nil
	}
}

// Text uses the cell as is.
func Text(column string) Extractor {
	return func(r results.Row) (string, error) {
		return r.Get(column)
	}
}

// Mapped looks the cell up in table.
func Mapped(column string, table Table) Extractor {
	return func(r results.Row) (string, error) {
		s, err := r.Get(column)
		if err != nil {
			return "", err
		}
		l, err := table.Lookup(s)
		if err != nil {
			var le *LookupError
			if errors.As(err, &le) {
				le.Line = r.Line
			}
			return "", err
		}
		return l, nil
	}
}
