package scenarios

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/iafilius/ResultPlotter/src/labels"
	"github.com/iafilius/ResultPlotter/src/logging"
	"github.com/iafilius/ResultPlotter/src/plotter"
	"github.com/iafilius/ResultPlotter/src/results"
)

// Config carries batch-wide rendering parameters.
type Config struct {
	Options plotter.Options
	// Labels resolves option-style labels; nil means labels.OptionLabels().
	Labels labels.Table
}

// Render draws a single scenario and returns the written path.
func Render(s Scenario, cfg Config) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	table := cfg.Labels
	if table == nil {
		table = labels.OptionLabels()
	}
	ex, err := s.Extractor(table)
	if err != nil {
		return "", err
	}
	if s.kind() == KindBreakdown {
		return plotter.RenderSingleCountryBreakdown(plotter.BreakdownSpec{
			SourcePath: s.Source,
			OutputBase: s.Output,
			Country:    s.Country,
			Extractor:  ex,
		}, cfg.Options)
	}
	return plotter.RenderLineChart(plotter.PlotSpec{
		SourcePath: s.Source,
		OutputPath: s.Output,
		Extractor:  ex,
		XLabel:     s.XLabel,
		YRange:     s.YRange,
		Lines:      s.Lines,
		Caption:    s.Caption,
	}, cfg.Options)
}

// Run renders list in order and stops at the first failure. Paths written before the
// failure are returned alongside the error.
func Run(ctx context.Context, list []Scenario, cfg Config) ([]string, error) {
	defer logging.TimeTrack(time.Now(), "scenario batch")
	written := make([]string, 0, len(list))
	for i, s := range list {
		if err := ctx.Err(); err != nil {
			logging.Info("batch canceled before " + s.Name)
			return written, err
		}
		logging.Debugf("[%d/%d] %s: %s", i+1, len(list), s.Name, s.Source)
		out, err := Render(s, cfg)
		if err != nil {
			return written, errors.Wrapf(err, "scenario %s", s.Name)
		}
		written = append(written, out)
	}
	logging.Infof("rendered %d charts", len(written))
	return written, nil
}

// Series loads a scenario's results file and collects its metric series without
// rendering. Breakdown scenarios collect their country's columns.
func Series(s Scenario, table labels.Table) (*results.MetricSeries, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = labels.OptionLabels()
	}
	ex, err := s.Extractor(table)
	if err != nil {
		return nil, err
	}
	cols := results.WeightedColumns()
	if s.kind() == KindBreakdown {
		cols = results.CountryColumns(s.Country)
	}
	tbl, err := results.Load(s.Source)
	if err != nil {
		return nil, err
	}
	series, err := results.Collect(tbl, ex, cols)
	if err != nil {
		return nil, errors.Wrapf(err, "collect %s", s.Source)
	}
	return series, nil
}
