// Package table loads comma-separated files into an in-memory column table
// and sniffs column names across inconsistent headers.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNotFound is returned when a table file does not exist.
var ErrNotFound = errors.New("table file not found")

// Table is an immutable, string-typed table. Missing cells are "".
type Table struct {
	Path    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table from a header and records. Short records are padded
// with "" so every row has one cell per column.
func New(path string, columns []string, records [][]string) *Table {
	t := &Table{
		Path:    path,
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([][]string, 0, len(records)),
	}
	for i, c := range t.columns {
		// First occurrence wins for duplicated headers.
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	for _, rec := range records {
		row := make([]string, len(t.columns))
		copy(row, rec)
		t.rows = append(t.rows, row)
	}
	return t
}

// Load reads a CSV file. A UTF-8 BOM is stripped and ragged rows are allowed.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, bytes.NewReader(b))
}

// Parse reads CSV data from r.
func Parse(path string, r io.Reader) (*Table, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})

	cr := csv.NewReader(bytes.NewReader(b))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return New(path, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse header of %s: %w", path, err)
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		records = append(records, rec)
	}
	return New(path, header, records), nil
}

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.columns...)
}

// Has reports whether the table has a column named col.
func (t *Table) Has(col string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[col]
	return ok
}

// HasAll reports whether every named column is present.
func (t *Table) HasAll(cols ...string) bool {
	for _, c := range cols {
		if !t.Has(c) {
			return false
		}
	}
	return true
}

// Missing returns the named columns that are absent, in argument order.
func (t *Table) Missing(cols ...string) []string {
	var out []string
	for _, c := range cols {
		if !t.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Value returns the cell at row i in column col, or "" when absent.
func (t *Table) Value(i int, col string) string {
	if t == nil || i < 0 || i >= len(t.rows) {
		return ""
	}
	j, ok := t.index[col]
	if !ok {
		return ""
	}
	return t.rows[i][j]
}

// Text returns the whitespace-trimmed cell at row i in column col.
func (t *Table) Text(i int, col string) string {
	return strings.TrimSpace(t.Value(i, col))
}

// Row returns a column-name keyed copy of row i.
func (t *Table) Row(i int) map[string]string {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make(map[string]string, len(t.columns))
	for j, c := range t.columns {
		if _, dup := out[c]; dup {
			continue
		}
		out[c] = t.rows[i][j]
	}
	return out
}
