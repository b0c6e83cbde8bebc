package results

import (
	"strings"
)

// MetricCount is the number of plotted metrics; every chart carries exactly this many lines.
const MetricCount = 4

// MetricColumns names the source column and the legend entry of each metric, in the
// canonical order accuracy, sensitivity, precision, F1.
type MetricColumns struct {
	Columns [MetricCount]string
	Legend  [MetricCount]string
}

// IsZero reports whether no columns were configured.
func (m MetricColumns) IsZero() bool { return m == MetricColumns{} }

// WeightedColumns are the class-support weighted metrics every experiment writes.
func WeightedColumns() MetricColumns {
	return MetricColumns{
		Columns: [MetricCount]string{
			"Accuracy",
			"Weighted mean of sensitivity",
			"Weighted mean of precision",
			"Weighted mean of F1",
		},
		Legend: [MetricCount]string{
			"Weighted mean of accuracy",
			"Weighted mean of sensitivity",
			"Weighted mean of precision",
			"Weighted mean of $F_1$",
		},
	}
}

// CountryColumns selects the per-country breakdown columns, e.g. "west_germany" reads
// "WEST_GERMANY sensitivity". Accuracy has no per-country variant.
func CountryColumns(country string) MetricColumns {
	prefix := strings.ToUpper(country)
	return MetricColumns{
		Columns: [MetricCount]string{
			"Accuracy",
			prefix + " sensitivity",
			prefix + " precision",
			prefix + " F1",
		},
		Legend: [MetricCount]string{"Accuracy", "Sensitivity", "Precision", "$F_1$"},
	}
}

// MetricSeries holds one display label and four metric values per row, in file order.
type MetricSeries struct {
	Columns     MetricColumns
	Labels      []string
	Accuracy    []float64
	Sensitivity []float64
	Precision   []float64
	F1          []float64
}

// Len returns the number of rows collected.
func (s *MetricSeries) Len() int { return len(s.Labels) }

// Values returns the i-th series in canonical order (0=accuracy .. 3=F1).
func (s *MetricSeries) Values(i int) []float64 {
	switch i {
	case 0:
		return s.Accuracy
	case 1:
		return s.Sensitivity
	case 2:
		return s.Precision
	case 3:
		return s.F1
	}
	return nil
}

// Collect walks every row of t, extracting a display label and the four metric values.
// The first failing row aborts collection.
func Collect(t *Table, label func(Row) (string, error), cols MetricColumns) (*MetricSeries, error) {
	if cols.IsZero() {
		cols = WeightedColumns()
	}
	n := len(t.Rows)
	s := &MetricSeries{
		Columns:     cols,
		Labels:      make([]string, 0, n),
		Accuracy:    make([]float64, 0, n),
		Sensitivity: make([]float64, 0, n),
		Precision:   make([]float64, 0, n),
		F1:          make([]float64, 0, n),
	}
	for _, row := range t.Rows {
		l, err := label(row)
		if err != nil {
			return nil, err
		}
		var vals [MetricCount]float64
		for i, c := range cols.Columns {
			v, err := row.Float(c)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		s.Labels = append(s.Labels, l)
		s.Accuracy = append(s.Accuracy, vals[0])
		s.Sensitivity = append(s.Sensitivity, vals[1])
		s.Precision = append(s.Precision, vals[2])
		s.F1 = append(s.F1, vals[3])
	}
	return s, nil
}
