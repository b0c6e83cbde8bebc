// Package scenarios describes the experiment charts declaratively and renders them as
// one batch.
//
// Design notes:
//   - A scenario names its label strategy instead of carrying a function so scenario
//     lists can live in JSONC files next to the results they plot.
//   - The batch is strictly sequential and fail-fast: the first error stops the run and
//     no later chart is attempted.
package scenarios

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/iafilius/ResultPlotter/src/labels"
	"github.com/iafilius/ResultPlotter/src/plotter"
)

// Scenario kinds.
const (
	KindChart     = "chart"
	KindBreakdown = "breakdown"
)

// Label strategy kinds.
const (
	LabelInt    = "int"
	LabelScaled = "scaled"
	LabelText   = "text"
	LabelOption = "option"
)

// LabelSpec selects a labels.Extractor.
type LabelSpec struct {
	Kind   string  `json:"kind"`
	Column string  `json:"column"`
	Factor float64 `json:"factor,omitempty"`
}

// Scenario is one entry of the batch: a chart or a per-country breakdown.
type Scenario struct {
	Name    string         `json:"name"`
	Kind    string         `json:"kind,omitempty"`
	Source  string         `json:"source"`
	Output  string         `json:"output"`
	Label   LabelSpec      `json:"label"`
	XLabel  string         `json:"xlabel,omitempty"`
	YRange  plotter.YRange `json:"ylim"`
	Lines   []float64      `json:"lines,omitempty"`
	Country string         `json:"country,omitempty"`
	Caption string         `json:"caption,omitempty"`
}

// Extractor builds the label strategy; option labels come from table.
func (s Scenario) Extractor(table labels.Table) (labels.Extractor, error) {
	switch strings.ToLower(s.Label.Kind) {
	case LabelInt:
		return labels.Int(s.Label.Column), nil
	case LabelScaled:
		f := s.Label.Factor
		if f == 0 {
			f = 1
		}
		return labels.ScaledInt(s.Label.Column, f), nil
	case LabelText:
		return labels.Text(s.Label.Column), nil
	case LabelOption:
		return labels.Mapped(s.Label.Column, table), nil
	default:
		return nil, errors.Errorf("scenario %s: unknown label kind %q", s.Name, s.Label.Kind)
	}
}

// Validate checks the fields Run relies on.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("scenario without name")
	}
	if s.Source == "" || s.Output == "" {
		return errors.Errorf("scenario %s: source and output are required", s.Name)
	}
	switch s.kind() {
	case KindChart:
	case KindBreakdown:
		if s.Country == "" {
			return errors.Errorf("scenario %s: breakdown needs a country", s.Name)
		}
		// Breakdowns have fixed axes and no overlays.
		switch {
		case len(s.Lines) > 0:
			return errors.Errorf("scenario %s: breakdown takes no reference lines", s.Name)
		case s.Caption != "":
			return errors.Errorf("scenario %s: breakdown takes no caption", s.Name)
		case s.XLabel != "" && s.XLabel != plotter.BreakdownXLabel:
			return errors.Errorf("scenario %s: breakdown x label is fixed to %q", s.Name, plotter.BreakdownXLabel)
		case s.YRange != (plotter.YRange{}) && s.YRange != plotter.BreakdownYRange:
			return errors.Errorf("scenario %s: breakdown ylim is fixed to [%g, %g]", s.Name,
				plotter.BreakdownYRange.Min, plotter.BreakdownYRange.Max)
		}
	default:
		return errors.Errorf("scenario %s: unknown kind %q", s.Name, s.Kind)
	}
	return nil
}

func (s Scenario) kind() string {
	if s.Kind == "" {
		return KindChart
	}
	return strings.ToLower(s.Kind)
}

// resolve joins relative source and output paths onto dataDir.
func (s Scenario) resolve(dataDir string) Scenario {
	if dataDir == "" {
		return s
	}
	if !filepath.IsAbs(s.Source) {
		s.Source = filepath.Join(dataDir, s.Source)
	}
	if !filepath.IsAbs(s.Output) {
		s.Output = filepath.Join(dataDir, s.Output)
	}
	return s
}
