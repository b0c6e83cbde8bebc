package plotter

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// metricColors are fixed per metric slot so a reference line always matches its series.
var metricColors = [4]drawing.Color{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, // accuracy
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255}, // sensitivity
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}, // precision
	{R: 0xd6, G: 0x27, B: 0x28, A: 255}, // F1
}

// lineStyle draws a connected line with a point marker at every row.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// referenceStyle is a dashed line without markers.
func referenceStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor:     col,
		StrokeWidth:     1.5,
		StrokeDashArray: []float64{6, 4},
	}
}
