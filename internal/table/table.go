// Package table holds the in-memory CSV table model and its load/save
// routines.
package table

import "fmt"

// Table represents a CSV file in memory: a header row of column names and
// the data rows beneath it. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Header)
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns a copy of the values of column i, top to bottom.
func (t *Table) Column(i int) ([]string, error) {
	if i < 0 || i >= len(t.Header) {
		return nil, fmt.Errorf("column index %d out of range (table has %d columns)", i, len(t.Header))
	}

	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values, nil
}

// SetColumn replaces the values of column i. The replacement must have
// exactly one value per row.
func (t *Table) SetColumn(i int, values []string) error {
	if i < 0 || i >= len(t.Header) {
		return fmt.Errorf("column index %d out of range (table has %d columns)", i, len(t.Header))
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("column %d: got %d values for %d rows", i, len(values), len(t.Rows))
	}

	for r := range t.Rows {
		t.Rows[r][i] = values[r]
	}
	return nil
}
