package results

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/iafilius/ResultPlotter/src/logging"
)

// Table is a fully read results file: the header and every data row in file order.
type Table struct {
	Path   string
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header carries column.
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}

// Load reads a CSV or XLSX results file, chosen by extension. The file is opened,
// read to the end and closed before Load returns.
func Load(path string) (*Table, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", "":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open results %s", path)
		}
		defer f.Close()
		t, err := ReadCSV(f)
		if err != nil {
			return nil, errors.Wrapf(err, "read results %s", path)
		}
		t.Path = path
		return t, nil
	case ".xlsx", ".xlsm":
		t, err := readXLSX(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read results %s", path)
		}
		t.Path = path
		return t, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// ReadCSV parses CSV with a header row. Records may be shorter than the header; the
// missing trailing columns are absent from their rows.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse csv")
	}
	return fromRecords(records)
}

func fromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}
	t := &Table{Header: header, Rows: make([]Row, 0, len(records)-1)}
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		cells := make(map[string]string, len(header))
		for j, cell := range rec {
			if j < len(header) {
				cells[header[j]] = strings.TrimSpace(cell)
			}
		}
		t.Rows = append(t.Rows, Row{Line: i + 2, cells: cells})
	}
	logging.Debugf("results: %d columns, %d rows", len(header), len(t.Rows))
	return t, nil
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
