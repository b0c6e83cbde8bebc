package scenarios

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/ResultPlotter/src/labels"
	"github.com/iafilius/ResultPlotter/src/plotter"
	"github.com/iafilius/ResultPlotter/src/results"
)

const weighted = "Accuracy,Weighted mean of sensitivity,Weighted mean of precision,Weighted mean of F1"

// writeFixtures writes a small results file for every default scenario source under dir.
func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"k_impact.csv":              "k," + weighted + "\n1,0.90,0.91,0.89,0.88\n3,0.92,0.93,0.90,0.89\n5,0.91,0.92,0.90,0.90\n",
		"k_impact_ignoring_usa.csv": "k," + weighted + "\n1,0.80,0.81,0.79,0.78\n3,0.82,0.83,0.80,0.79\n",
		"k_impact_with_chebyshev_and_disabled_first_number.csv": "k," + weighted + "\n1,0.90,0.91,0.89,0.88\n2,0.91,0.92,0.90,0.89\n",
		"training_set_size_impact.csv":                          "training set size," + weighted + "\n0.1,0.80,0.81,0.79,0.78\n0.5,0.88,0.89,0.87,0.86\n0.9,0.91,0.92,0.90,0.89\n",
		"metric_impact.csv":                                     "metric," + weighted + "\neuclidean,0.88,0.93,0.87,0.86\ntaxicab,0.87,0.93,0.86,0.85\nchebyshev,0.93,0.97,0.93,0.91\n",
		"metric_impact_ignoring_west_germany_japan_and_uk.csv":  "metric," + weighted + "\neuclidean,0.90,0.93,0.87,0.86\n",
		"metric_impact_ignoring_capitalized_word_acronym_and_title.csv":            "metric," + weighted + "\neuclidean,0.60,0.63,0.57,0.56\n",
		"metric_impact_ignoring_all_except_capitalized_word_acronym_and_title.csv": "metric," + weighted + "\neuclidean,0.70,0.73,0.67,0.66\n",
	}
	var fe strings.Builder
	fe.WriteString("feature," + weighted)
	for _, c := range []string{"WEST_GERMANY", "UK", "JAPAN"} {
		fe.WriteString("," + c + " sensitivity," + c + " precision," + c + " F1")
	}
	fe.WriteString("\n")
	for _, opt := range labels.OptionLabels().Keys() {
		fe.WriteString(opt + ",0.90,0.93,0.88,0.87,0.70,0.65,0.67,0.80,0.75,0.77,0.60,0.62,0.61\n")
	}
	for _, m := range []string{"euclidean", "taxicab", "chebyshev"} {
		files["feature_exclusion_impact_"+m+".csv"] = fe.String()
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestDefaults_OrderAndPaths(t *testing.T) {
	list := Defaults("data")
	require.Len(t, list, 14)
	assert.Equal(t, "k_impact", list[0].Name)
	assert.Equal(t, filepath.Join("data", "k_impact.csv"), list[0].Source)
	assert.Equal(t, filepath.Join("data", "k_impact"), list[0].Output)
	assert.Equal(t, plotter.YRange{Min: 0.70, Max: 1.0}, list[1].YRange)
	assert.Equal(t, "metric_impact_ignoring_all_except_capitalized_word_acronym_and_title", list[13].Name)

	breakdowns := 0
	for _, s := range list {
		require.NoError(t, s.Validate(), s.Name)
		assert.True(t, len(s.Lines) == 0 || len(s.Lines) == 4, s.Name)
		if s.Kind == KindBreakdown {
			breakdowns++
			assert.Equal(t, filepath.Join("data", "feature_exclusion_impact_chebyshev.csv"), s.Source)
		}
	}
	assert.Equal(t, 3, breakdowns)
	assert.Equal(t, []float64{0.9314192, 0.97556776, 0.93529546, 0.9143685}, list[8].Lines)
}

func TestRun_RendersEveryDefault(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	written, err := Run(context.Background(), Defaults(dir), Config{Options: plotter.Options{Width: 480, Height: 320}})
	require.NoError(t, err)
	require.Len(t, written, 14)
	assert.Equal(t, filepath.Join(dir, "k_impact.png"), written[0])
	assert.Contains(t, written, filepath.Join(dir, "feature_exclusion_impact_chebyshev_west_germany.png"))
	assert.Contains(t, written, filepath.Join(dir, "feature_exclusion_impact_chebyshev_japan.png"))
	for _, p := range written {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "k_impact_ignoring_usa.csv")))

	written, err := Run(context.Background(), Defaults(dir), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario k_impact_ignoring_usa")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, []string{filepath.Join(dir, "k_impact.png")}, written)
	_, statErr := os.Stat(filepath.Join(dir, "training_set_size_impact.png"))
	assert.True(t, os.IsNotExist(statErr), "later scenarios must not run")
}

func TestRun_UnknownFeatureAbortsBatch(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	list := Defaults(dir)
	_, err := Run(context.Background(), list[6:7], Config{Labels: labels.Table{"--disable-title": "$t^D$"}})
	assert.ErrorIs(t, err, labels.ErrUnknownLabel)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	written, err := Run(ctx, Defaults(t.TempDir()), Config{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, written)
}

func TestLoadFile_JSONC(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	cfg := filepath.Join(dir, "scenarios.jsonc")
	content := `// custom batch
[
  // only the k sweep
  {"name": "k", "source": "k_impact.csv", "output": "out/k_sweep", "label": {"kind": "int", "column": "k"},
   "xlabel": "Neighbour count $k$", "ylim": {"min": 0.8, "max": 1.0}, "caption": "k sweep"},
  {"name": "uk", "kind": "breakdown", "source": "feature_exclusion_impact_taxicab.csv", "output": "taxicab",
   "label": {"kind": "option", "column": "feature"}, "country": "uk"}
]
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))

	list, err := LoadFile(cfg, dir)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, filepath.Join(dir, "k_impact.csv"), list[0].Source)
	assert.Equal(t, plotter.YRange{Min: 0.8, Max: 1.0}, list[0].YRange)

	written, err := Run(context.Background(), list, Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "out", "k_sweep.png"),
		filepath.Join(dir, "taxicab_uk.png"),
	}, written)
}

func TestLoadFile_Rejects(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"empty.jsonc":          "// nothing\n[]\n",
		"nocountry.jsonc":      `[{"name":"b","kind":"breakdown","source":"a.csv","output":"b","label":{"kind":"option","column":"feature"}}]`,
		"dupe.jsonc":           `[{"name":"a","source":"a.csv","output":"a","label":{"kind":"int","column":"k"}},{"name":"a","source":"a.csv","output":"b","label":{"kind":"int","column":"k"}}]`,
		"badjson.jsonc":        `[{"name":}]`,
		"breakdownlines.jsonc": `[{"name":"b","kind":"breakdown","source":"a.csv","output":"b","country":"uk","label":{"kind":"option","column":"feature"},"lines":[0.9,0.9,0.9,0.9]}]`,
		"breakdownylim.jsonc":  `[{"name":"b","kind":"breakdown","source":"a.csv","output":"b","country":"uk","label":{"kind":"option","column":"feature"},"ylim":{"min":0.75,"max":1}}]`,
	}
	for name, content := range cases {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		_, err := LoadFile(p, dir)
		assert.Error(t, err, name)
	}
}

func TestScenario_Extractor(t *testing.T) {
	row := results.NewRow(2, map[string]string{"k": "7", "training set size": "0.3", "metric": "taxicab", "feature": "--disable-title"})
	cases := []struct {
		spec LabelSpec
		want string
	}{
		{LabelSpec{Kind: "int", Column: "k"}, "7"},
		{LabelSpec{Kind: "scaled", Column: "training set size", Factor: 10}, "3"},
		{LabelSpec{Kind: "TEXT", Column: "metric"}, "taxicab"},
		{LabelSpec{Kind: "option", Column: "feature"}, "$t^D$"},
	}
	for _, tc := range cases {
		ex, err := Scenario{Name: "x", Label: tc.spec}.Extractor(labels.OptionLabels())
		require.NoError(t, err)
		got, err := ex(row)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
	_, err := Scenario{Name: "x", Label: LabelSpec{Kind: "lambda"}}.Extractor(nil)
	assert.Error(t, err)
}

func TestValidate_BreakdownRejectsIgnoredFields(t *testing.T) {
	base := Scenario{
		Name: "b", Kind: KindBreakdown, Source: "a.csv", Output: "b", Country: "uk",
		Label: LabelSpec{Kind: LabelOption, Column: "feature"},
	}
	require.NoError(t, base.Validate())

	fixed := base
	fixed.XLabel = plotter.BreakdownXLabel
	fixed.YRange = plotter.BreakdownYRange
	require.NoError(t, fixed.Validate())

	for name, mutate := range map[string]func(*Scenario){
		"lines":   func(s *Scenario) { s.Lines = []float64{0.9, 0.9, 0.9, 0.9} },
		"caption": func(s *Scenario) { s.Caption = "uk" },
		"xlabel":  func(s *Scenario) { s.XLabel = "Feature" },
		"ylim":    func(s *Scenario) { s.YRange = plotter.DefaultYRange },
	} {
		s := base
		mutate(&s)
		assert.Error(t, s.Validate(), name)
	}

	for _, s := range Defaults("data") {
		assert.NoError(t, s.Validate(), s.Name)
	}
}
