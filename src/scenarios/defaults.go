package scenarios

import (
	"github.com/iafilius/ResultPlotter/src/plotter"
)

var (
	kLabel       = LabelSpec{Kind: LabelInt, Column: "k"}
	metricLabel  = LabelSpec{Kind: LabelText, Column: "metric"}
	featureLabel = LabelSpec{Kind: LabelOption, Column: "feature"}
	lowYRange    = plotter.YRange{Min: 0.5, Max: 1.0}
)

const (
	kXLabel       = "Neighbour count $k$"
	metricXLabel  = "Metric"
	featureXLabel = plotter.BreakdownXLabel
)

// Defaults returns the full experiment batch in render order. Paths are relative to
// dataDir; outputs carry no extension.
func Defaults(dataDir string) []Scenario {
	list := []Scenario{
		{Name: "k_impact", Source: "k_impact.csv", Output: "k_impact",
			Label: kLabel, XLabel: kXLabel, YRange: plotter.DefaultYRange},
		{Name: "k_impact_ignoring_usa", Source: "k_impact_ignoring_usa.csv", Output: "k_impact_ignoring_usa",
			Label: kLabel, XLabel: kXLabel, YRange: plotter.YRange{Min: 0.70, Max: 1.0}},
		{Name: "k_impact_with_chebyshev_and_disabled_first_number",
			Source: "k_impact_with_chebyshev_and_disabled_first_number.csv",
			Output: "k_impact_with_chebyshev_and_disabled_first_number",
			Label:  kLabel, XLabel: kXLabel, YRange: plotter.DefaultYRange},
		{Name: "training_set_size_impact", Source: "training_set_size_impact.csv", Output: "training_set_size_impact",
			Label:  LabelSpec{Kind: LabelScaled, Column: "training set size", Factor: 10},
			XLabel: "Training set size [$\\%$]", YRange: plotter.DefaultYRange},
		{Name: "metric_impact", Source: "metric_impact.csv", Output: "metric_impact",
			Label: metricLabel, XLabel: metricXLabel, YRange: plotter.DefaultYRange},
		{Name: "metric_impact_ignoring_west_germany_japan_and_uk",
			Source: "metric_impact_ignoring_west_germany_japan_and_uk.csv",
			Output: "metric_impact_ignoring_west_germany_japan_and_uk",
			Label:  metricLabel, XLabel: metricXLabel, YRange: plotter.DefaultYRange},
		{Name: "feature_exclusion_impact_euclidean", Source: "feature_exclusion_impact_euclidean.csv",
			Output: "feature_exclusion_impact_euclidean",
			Label:  featureLabel, XLabel: featureXLabel, YRange: plotter.DefaultYRange,
			Lines: []float64{0.8799465, 0.93279153, 0.86925733, 0.8605769}},
		{Name: "feature_exclusion_impact_taxicab", Source: "feature_exclusion_impact_taxicab.csv",
			Output: "feature_exclusion_impact_taxicab",
			Label:  featureLabel, XLabel: featureXLabel, YRange: plotter.DefaultYRange,
			Lines: []float64{0.87652487, 0.9350982, 0.86842424, 0.85548985}},
		{Name: "feature_exclusion_impact_chebyshev", Source: "feature_exclusion_impact_chebyshev.csv",
			Output: "feature_exclusion_impact_chebyshev",
			Label:  featureLabel, XLabel: featureXLabel, YRange: plotter.DefaultYRange,
			Lines: []float64{0.9314192, 0.97556776, 0.93529546, 0.9143685}},
	}
	for _, country := range []string{"west_germany", "uk", "japan"} {
		list = append(list, Scenario{
			Name:    "feature_exclusion_impact_chebyshev_" + country,
			Kind:    KindBreakdown,
			Source:  "feature_exclusion_impact_chebyshev.csv",
			Output:  "feature_exclusion_impact_chebyshev",
			Label:   featureLabel,
			XLabel:  featureXLabel,
			YRange:  plotter.BreakdownYRange,
			Country: country,
		})
	}
	list = append(list,
		Scenario{Name: "metric_impact_ignoring_capitalized_word_acronym_and_title",
			Source: "metric_impact_ignoring_capitalized_word_acronym_and_title.csv",
			Output: "metric_impact_ignoring_capitalized_word_acronym_and_title",
			Label:  metricLabel, XLabel: metricXLabel, YRange: lowYRange},
		Scenario{Name: "metric_impact_ignoring_all_except_capitalized_word_acronym_and_title",
			Source: "metric_impact_ignoring_all_except_capitalized_word_acronym_and_title.csv",
			Output: "metric_impact_ignoring_all_except_capitalized_word_acronym_and_title",
			Label:  metricLabel, XLabel: metricXLabel, YRange: lowYRange},
	)
	for i := range list {
		list[i] = list[i].resolve(dataDir)
	}
	return list
}
