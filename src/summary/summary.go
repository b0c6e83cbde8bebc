// Package summary reduces collected metric series to per-metric statistics and prints
// them as tables.
package summary

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/iafilius/ResultPlotter/src/results"
)

// MetricSummary describes one metric across all rows.
type MetricSummary struct {
	Name      string
	Mean      float64
	StdDev    float64
	Min       float64
	Best      float64
	BestLabel string
}

// Summary holds the four metric summaries in canonical order.
type Summary struct {
	Rows    int
	Metrics [results.MetricCount]MetricSummary
}

// Summarize computes mean, population standard deviation, minimum and the best
// (highest) value with its row label for each metric.
func Summarize(s *results.MetricSeries) (Summary, error) {
	if s == nil || s.Len() == 0 {
		return Summary{}, results.ErrNoRows
	}
	cols := s.Columns
	if cols.IsZero() {
		cols = results.WeightedColumns()
	}
	out := Summary{Rows: s.Len()}
	for i := 0; i < results.MetricCount; i++ {
		vals := stats.Float64Data(s.Values(i))
		mean, err := vals.Mean()
		if err != nil {
			return Summary{}, errors.Wrapf(err, "mean of %s", cols.Columns[i])
		}
		sd, err := vals.StandardDeviationPopulation()
		if err != nil {
			return Summary{}, errors.Wrapf(err, "stddev of %s", cols.Columns[i])
		}
		best := floats.MaxIdx(s.Values(i))
		out.Metrics[i] = MetricSummary{
			Name:      cols.Columns[i],
			Mean:      mean,
			StdDev:    sd,
			Min:       floats.Min(s.Values(i)),
			Best:      s.Values(i)[best],
			BestLabel: s.Labels[best],
		}
	}
	return out, nil
}

// WriteTable prints sum as an ASCII table headed by title.
func WriteTable(w io.Writer, title string, sum Summary) {
	if title != "" {
		fmt.Fprintf(w, "%s (%d rows)\n", title, sum.Rows)
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Mean", "Std dev", "Min", "Best", "Best at"})
	table.SetAutoWrapText(false)
	for _, m := range sum.Metrics {
		table.Append([]string{
			m.Name,
			fmt.Sprintf("%.4f", m.Mean),
			fmt.Sprintf("%.4f", m.StdDev),
			fmt.Sprintf("%.4f", m.Min),
			fmt.Sprintf("%.4f", m.Best),
			m.BestLabel,
		})
	}
	table.Render()
}
