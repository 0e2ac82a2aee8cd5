package table

import (
	"fmt"
	"strings"
)

// Table is an in-memory dataset: a header plus rows of raw cells aligned to it.
// Every row has exactly len(Columns) cells.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// New builds a table from a header and raw records. Short records are padded
// with blanks and long ones truncated so all rows share the header's width.
func New(name string, header []string, records [][]string) *Table {
	cols := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		cols[i] = strings.TrimSpace(h)
	}
	t := &Table{Name: name, Columns: cols, Rows: make([][]string, 0, len(records))}
	for _, rec := range records {
		t.Append(rec)
	}
	t.reindex()
	return t
}

// Append adds one raw record, normalized to the header width.
func (t *Table) Append(rec []string) {
	row := make([]string, len(t.Columns))
	copy(row, rec)
	t.Rows = append(t.Rows, row)
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.index[c]; !dup {
			t.index[c] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of a column, or -1 if absent.
func (t *Table) Index(col string) int {
	if t.index == nil {
		t.reindex()
	}
	if i, ok := t.index[col]; ok {
		return i
	}
	return -1
}

// Has reports whether the header contains col.
func (t *Table) Has(col string) bool { return t.Index(col) >= 0 }

// Cell returns the raw value of col in row r; absent columns read as blank.
func (t *Table) Cell(r int, col string) string {
	i := t.Index(col)
	if i < 0 {
		return ""
	}
	return t.Rows[r][i]
}

// Column returns the raw values of a column in row order.
func (t *Table) Column(col string) ([]string, error) {
	i := t.Index(col)
	if i < 0 {
		return nil, fmt.Errorf("column %q not found", col)
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Values parses a column once into tagged values.
func (t *Table) Values(col string) ([]Value, error) {
	raw, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(raw))
	for i, s := range raw {
		out[i] = Parse(s)
	}
	return out, nil
}
