package labels

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownLabel is matched by every *LookupError.
var ErrUnknownLabel = errors.New("no label for key")

// LookupError reports a key absent from a label table.
type LookupError struct {
	Line int
	Key  string
}

func (e *LookupError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: no label for %q", e.Line, e.Key)
	}
	return fmt.Sprintf("no label for %q", e.Key)
}

func (e *LookupError) Is(target error) bool { return target == ErrUnknownLabel }

// Table maps raw cell values to display labels.
type Table map[string]string

// Lookup returns the label for key.
func (t Table) Lookup(key string) (string, error) {
	l, ok := t[key]
	if !ok {
		return "", &LookupError{Key: key}
	}
	return l, nil
}

// Keys returns the table keys sorted.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// OptionLabels maps the classifier's feature-disable flags to the symbols used on
// feature-exclusion charts. Each call returns a fresh copy.
func OptionLabels() Table {
	return Table{
		"--disable-west-german-political-count": "$np^D$",
		"--disable-canadian-city-freq":          "$fw^D$",
		"--disable-french-bank-presence":        "$o^D$",
		"--disable-uk-acronym-presence":         "$u^D$",
		"--disable-japanese-company-presence":   "$c^D$",
		"--disable-usa-state-presence":          "$h^D$",
		"--disable-capitals-presence":           "$s^D$",
		"--disable-currencies-presence":         "$m^D$",
		"--disable-first-capitalized-word":      "$w^D$",
		"--disable-first-number":                "$r^D$",
		"--disable-most-frequent-acronym":       "$n^D$",
		"--disable-title":                       "$t^D$",
	}
}
