// Package table models the source workbook as named tables of string
// cells and loads them from CSV exports.
package table

// Row maps column headers to cell values. An empty string means the
// cell is absent; the two are not distinguished anywhere downstream.
type Row map[string]string

// Table is one sheet: an ordered header plus ordered rows.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Cell returns the value at row r under column col.
func (t *Table) Cell(r int, col string) string {
	if r < 0 || r >= len(t.Rows) {
		return ""
	}
	return t.Rows[r][col]
}

// CellAt returns the value at row r, column position c. Relation sheets
// are read positionally, matching the source workbook's fixed layout.
func (t *Table) CellAt(r, c int) string {
	if c < 0 || c >= len(t.Columns) {
		return ""
	}
	return t.Cell(r, t.Columns[c])
}

// Column returns every cell of the named column in row order.
func (t *Table) Column(col string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[col]
	}
	return out
}

// HasColumn reports whether the header contains col.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Workbook is an ordered collection of named tables.
type Workbook struct {
	tables map[string]*Table
	order  []string
}

// NewWorkbook returns an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{tables: make(map[string]*Table)}
}

// Add inserts a table, replacing any existing table of the same name.
func (w *Workbook) Add(t *Table) {
	if _, exists := w.tables[t.Name]; !exists {
		w.order = append(w.order, t.Name)
	}
	w.tables[t.Name] = t
}

// Table returns the named table.
func (w *Workbook) Table(name string) (*Table, bool) {
	t, ok := w.tables[name]
	return t, ok
}

// Names returns the table names in insertion order.
func (w *Workbook) Names() []string {
	out := make([]string, len(w.order))
	copy(out, w.order)
	return out
}
