package plotter

import (
	"github.com/pkg/errors"

	"github.com/iafilius/ResultPlotter/src/labels"
	"github.com/iafilius/ResultPlotter/src/results"
)

var (
	// ErrReferenceLineCount is returned when reference lines are given but not one per metric.
	ErrReferenceLineCount = errors.New("expected the reference line count to be the same as the plot count")
	// ErrNoExtractor is returned when a spec carries no label extractor.
	ErrNoExtractor = errors.New("no label extractor")
	// ErrInvalidRange is returned for a Y range whose max does not exceed its min.
	ErrInvalidRange = errors.New("invalid y range")
	// ErrUnsupportedOutput is returned for output paths with an unknown image extension.
	ErrUnsupportedOutput = errors.New("unsupported output format")
)

// YRange bounds the Y axis.
type YRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultYRange is used by most experiment charts.
var DefaultYRange = YRange{Min: 0.75, Max: 1.0}

// PlotSpec configures a single chart.
type PlotSpec struct {
	SourcePath string
	// OutputPath may omit the extension; Options.Format then decides it.
	OutputPath string
	Extractor  labels.Extractor
	XLabel     string
	YRange     YRange
	// Lines holds one horizontal reference value per metric, or nothing.
	Lines []float64
	// Columns defaults to results.WeightedColumns when zero.
	Columns results.MetricColumns
	// Caption is drawn under the chart (PNG only).
	Caption string
}

// BreakdownSpec configures a per-country chart over a feature-exclusion results file.
type BreakdownSpec struct {
	SourcePath string
	OutputBase string
	Country    string
	// Extractor defaults to the feature option labels.
	Extractor labels.Extractor
}

// Options are rendering parameters shared by every chart in a batch.
type Options struct {
	Format string // "png" or "svg"; used when the output path has no extension
	Width  int
	Height int
}

const (
	defaultWidth  = 800
	defaultHeight = 480
)

func (o Options) withDefaults() Options {
	if o.Format == "" {
		o.Format = "png"
	}
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	return o
}

func (s PlotSpec) validate() error {
	if s.Extractor == nil {
		return ErrNoExtractor
	}
	if !(s.YRange.Max > s.YRange.Min) {
		return errors.Wrapf(ErrInvalidRange, "[%g, %g]", s.YRange.Min, s.YRange.Max)
	}
	return checkLines(s.Lines)
}

func checkLines(lines []float64) error {
	if len(lines) != 0 && len(lines) != results.MetricCount {
		return errors.Wrapf(ErrReferenceLineCount, "got %d, want %d", len(lines), results.MetricCount)
	}
	return nil
}
