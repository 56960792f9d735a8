package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ReadCSV parses CSV content into a table. The first record is the
// header; short records are padded with empty cells and surplus cells
// beyond the header are dropped, mirroring how spreadsheet exports
// behave.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv %s: no header row", name)
	}

	header := records[0]
	t := &Table{Name: name, Columns: header}
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// LoadCSV reads one CSV file as a table named after its base name
// (without extension) unless name is non-empty.
func LoadCSV(path, name string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return ReadCSV(name, f)
}

// LoadDir loads every file under dir matching the doublestar pattern
// (e.g. "*.csv" or "sheets/**/*.csv") into a workbook. Files load in
// sorted path order so the workbook's table order is stable.
func LoadDir(dir, pattern string) (*Workbook, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
	}
	sort.Strings(matches)

	wb := NewWorkbook()
	for _, m := range matches {
		t, err := LoadCSV(filepath.Join(dir, m), "")
		if err != nil {
			return nil, err
		}
		wb.Add(t)
	}
	return wb, nil
}
