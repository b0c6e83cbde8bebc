package plotter

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// buildXAxis places row i at x=i and labels it with labels[i]. Positions are indices
// rather than label values so numeric and categorical labels are spaced evenly.
// go-chart derives the axis range from the outermost ticks when ticks are set, so
// unlabelled ticks at -0.5 and n-0.5 hold the half-step padding on both sides.
func buildXAxis(labels []string, name string) ([]float64, chart.XAxis) {
	n := len(labels)
	lo, hi := -0.5, float64(n)-0.5
	xs := make([]float64, n)
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: lo})
	for i, l := range labels {
		x := float64(i)
		xs[i] = x
		ticks = append(ticks, chart.Tick{Value: x, Label: plainMath(l)})
	}
	ticks = append(ticks, chart.Tick{Value: hi})
	xa := chart.XAxis{
		Name:  plainMath(name),
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: lo, Max: hi},
	}
	return xs, xa
}

// buildYAxis fixes the axis to rng. The first and last ticks sit exactly on the
// bounds; nice ticks fill the inside, minus any too close to a bound to label.
func buildYAxis(rng YRange) chart.YAxis {
	nice := niceTicks(rng.Min, rng.Max, 6)
	gap := (rng.Max - rng.Min) / 20
	if len(nice) > 1 {
		gap = (nice[1].Value - nice[0].Value) / 3
	}
	ticks := []chart.Tick{{Value: rng.Min, Label: formatTick(rng.Min)}}
	for _, t := range nice {
		if t.Value-rng.Min > gap && rng.Max-t.Value > gap {
			ticks = append(ticks, t)
		}
	}
	ticks = append(ticks, chart.Tick{Value: rng.Max, Label: formatTick(rng.Max)})
	return chart.YAxis{
		Name:  "Measure value",
		Range: &chart.ContinuousRange{Min: rng.Min, Max: rng.Max},
		Ticks: ticks,
	}
}

// niceTicks generates up to n desired tick marks between [min, max] using nice increments.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// Preferred tick steps: 1, 2, 2.5, 5, 10 ... scaled by power of 10
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	// step by index to avoid accumulating float error across ticks
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av < 1e-12:
		return "0"
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
