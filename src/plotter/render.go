// Package plotter renders classifier metric series as line charts.
//
// Each call is a self-contained pipeline: validate the spec, read the whole results
// file, collect the four metric series, build a go-chart chart and write one image.
// Nothing is written unless every row was read and parsed.
package plotter

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/iafilius/ResultPlotter/src/labels"
	"github.com/iafilius/ResultPlotter/src/logging"
	"github.com/iafilius/ResultPlotter/src/results"
)

// BreakdownYRange is the fixed Y range of per-country charts.
var BreakdownYRange = YRange{Min: 0.5, Max: 1.0}

// BreakdownXLabel is the fixed X axis name of per-country charts.
const BreakdownXLabel = "Disabled feature"

// RenderLineChart renders one chart per spec and returns the path written.
func RenderLineChart(spec PlotSpec, opts Options) (string, error) {
	defer logging.TimeTrack(time.Now(), "render "+spec.OutputPath)
	if err := spec.validate(); err != nil {
		return "", err
	}
	opts = opts.withDefaults()
	outPath, format, err := resolveOutput(spec.OutputPath, opts.Format)
	if err != nil {
		return "", err
	}
	tbl, err := results.Load(spec.SourcePath)
	if err != nil {
		return "", err
	}
	series, err := results.Collect(tbl, spec.Extractor, spec.Columns)
	if err != nil {
		return "", errors.Wrapf(err, "collect %s", spec.SourcePath)
	}
	if series.Len() == 0 {
		return "", errors.Wrapf(results.ErrNoRows, "%s", spec.SourcePath)
	}
	ch, err := BuildChart(series, spec, opts)
	if err != nil {
		return "", err
	}
	if err := writeChart(&ch, outPath, format, spec.Caption); err != nil {
		return "", err
	}
	logging.WithField("rows", series.Len()).Infof("wrote %s", outPath)
	return outPath, nil
}

// RenderSingleCountryBreakdown plots accuracy plus one country's sensitivity, precision
// and F1 columns. The output path is OutputBase suffixed with "_<country>".
func RenderSingleCountryBreakdown(spec BreakdownSpec, opts Options) (string, error) {
	ex := spec.Extractor
	if ex == nil {
		ex = labels.Mapped("feature", labels.OptionLabels())
	}
	return RenderLineChart(PlotSpec{
		SourcePath: spec.SourcePath,
		OutputPath: spec.OutputBase + "_" + spec.Country,
		Extractor:  ex,
		XLabel:     BreakdownXLabel,
		YRange:     BreakdownYRange,
		Columns:    results.CountryColumns(spec.Country),
	}, opts)
}

// BuildChart lays out collected series: metric lines in canonical order, then one dashed
// reference line per metric when spec.Lines is set. The legend lists metric lines only.
func BuildChart(s *results.MetricSeries, spec PlotSpec, opts Options) (chart.Chart, error) {
	if err := checkLines(spec.Lines); err != nil {
		return chart.Chart{}, err
	}
	opts = opts.withDefaults()
	cols := s.Columns
	if cols.IsZero() {
		cols = results.WeightedColumns()
	}
	xs, xAxis := buildXAxis(s.Labels, spec.XLabel)

	metricSeries := make([]chart.Series, 0, results.MetricCount)
	for i := 0; i < results.MetricCount; i++ {
		metricSeries = append(metricSeries, chart.ContinuousSeries{
			Name:    plainMath(cols.Legend[i]),
			XValues: xs,
			YValues: s.Values(i),
			Style:   lineStyle(metricColors[i]),
		})
	}
	series := append([]chart.Series{}, metricSeries...)
	for i, y := range spec.Lines {
		series = append(series, chart.ContinuousSeries{
			Name:    plainMath(cols.Legend[i]) + " (reference)",
			XValues: []float64{xAxis.Range.GetMin(), xAxis.Range.GetMax()},
			YValues: []float64{y, y},
			Style:   referenceStyle(metricColors[i]),
		})
	}

	padBottom := 20
	if spec.Caption != "" {
		padBottom += captionBand
	}
	ch := chart.Chart{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis:      xAxis,
		YAxis:      buildYAxis(spec.YRange),
		Series:     series,
	}
	legendSource := chart.Chart{Series: metricSeries}
	ch.Elements = []chart.Renderable{chart.Legend(&legendSource)}
	return ch, nil
}

// resolveOutput derives the final path and encoder from the output path; a path
// without extension gets ".<format>" appended.
func resolveOutput(path, format string) (string, string, error) {
	if strings.TrimSpace(path) == "" {
		return "", "", errors.New("empty output path")
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg":
		return path, ext[1:], nil
	case "":
		format = strings.ToLower(format)
		if format != "png" && format != "svg" {
			return "", "", errors.Wrapf(ErrUnsupportedOutput, "%q", format)
		}
		return path + "." + format, format, nil
	default:
		return "", "", errors.Wrapf(ErrUnsupportedOutput, "%s", path)
	}
}

func writeChart(ch *chart.Chart, outPath, format, caption string) error {
	provider := chart.PNG
	if format == "svg" {
		provider = chart.SVG
	}
	var buf bytes.Buffer
	if err := ch.Render(provider, &buf); err != nil {
		return errors.Wrapf(err, "render %s", outPath)
	}
	data := buf.Bytes()
	if caption != "" {
		if format != "png" {
			logging.Warnf("caption %q ignored for %s output", caption, format)
		} else {
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				return errors.Wrapf(err, "decode %s", outPath)
			}
			var out bytes.Buffer
			if err := png.Encode(&out, drawCaption(img, caption)); err != nil {
				return errors.Wrapf(err, "png encode %s", outPath)
			}
			data = out.Bytes()
		}
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create out dir %s", dir)
		}
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", outPath)
	}
	return nil
}
