package results

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const header = "k,Accuracy,Weighted mean of sensitivity,Weighted mean of precision,Weighted mean of F1\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func kLabel(r Row) (string, error) { return r.Get("k") }

func TestCollect_KeepsFileOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString(header)
	for k := 1; k <= 10; k++ {
		b.WriteString(strconv.Itoa(k) + ",0.9,0.8,0.7,0.6\n")
	}
	tbl, err := Load(writeFile(t, "k_impact.csv", b.String()))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 10)

	s, err := Collect(tbl, kLabel, MetricColumns{})
	require.NoError(t, err)
	assert.Equal(t, 10, s.Len())
	for i := 0; i < 4; i++ {
		assert.Len(t, s.Values(i), 10)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, s.Labels)
	assert.Equal(t, WeightedColumns(), s.Columns)
	assert.InDelta(t, 0.6, s.F1[9], 1e-12)
}

func TestCollect_MissingColumn(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("k,Accuracy,Weighted mean of sensitivity,Weighted mean of precision\n1,0.9,0.8,0.7\n"))
	require.NoError(t, err)
	_, err = Collect(tbl, kLabel, WeightedColumns())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	var ce *ColumnError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Weighted mean of F1", ce.Column)
	assert.Equal(t, 2, ce.Line)
}

func TestCollect_MalformedNumber(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(header + "1,0.9,0.8,0.7,0.6\n2,0.9,n/a,0.7,0.6\n"))
	require.NoError(t, err)
	_, err = Collect(tbl, kLabel, WeightedColumns())
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, "Weighted mean of sensitivity", pe.Column)
	assert.Equal(t, "n/a", pe.Value)
}

func TestCollect_LabelErrorAborts(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(header + "1,0.9,0.8,0.7,0.6\n"))
	require.NoError(t, err)
	boom := errors.New("boom")
	_, err = Collect(tbl, func(Row) (string, error) { return "", boom }, WeightedColumns())
	assert.ErrorIs(t, err, boom)
}

func TestCountryColumns_UpperCasesPrefix(t *testing.T) {
	c := CountryColumns("west_germany")
	assert.Equal(t, "WEST_GERMANY sensitivity", c.Columns[1])
	assert.Equal(t, "WEST_GERMANY precision", c.Columns[2])
	assert.Equal(t, "WEST_GERMANY F1", c.Columns[3])
	assert.Equal(t, "Accuracy", c.Columns[0])
}

func TestReadCSV_TrimsAndSkipsBOM(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("\ufeff k , metric\n 1 , euclidean \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "metric"}, tbl.Header)
	assert.True(t, tbl.HasColumn("metric"))
	v, err := tbl.Rows[0].Get("metric")
	require.NoError(t, err)
	assert.Equal(t, "euclidean", v)
}

func TestReadCSV_ShortRecordLeavesColumnAbsent(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n"))
	require.NoError(t, err)
	_, err = tbl.Rows[0].Get("c")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeFile(t, "results.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"metric", "Accuracy", "Weighted mean of sensitivity", "Weighted mean of precision", "Weighted mean of F1"},
		{"euclidean", 0.88, 0.93, 0.87, 0.86},
		{"chebyshev", 0.93, 0.97, 0.93, 0.91},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	p := filepath.Join(t.TempDir(), "metric_impact.xlsx")
	require.NoError(t, f.SaveAs(p))

	tbl, err := Load(p)
	require.NoError(t, err)
	s, err := Collect(tbl, func(r Row) (string, error) { return r.Get("metric") }, WeightedColumns())
	require.NoError(t, err)
	assert.Equal(t, []string{"euclidean", "chebyshev"}, s.Labels)
	assert.InDelta(t, 0.97, s.Sensitivity[1], 1e-9)
}
