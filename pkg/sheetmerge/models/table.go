package models

import (
	"strconv"
	"strings"
)

// PlaceholderPrefix marks synthetic names given to columns whose header cell was blank.
const PlaceholderPrefix = "Unnamed"

// ItemColumn is the canonical sequence-number column name.
const ItemColumn = "Item"

// Table is an ordered set of named columns stored row-major.
type Table struct {
	// Source is the file name the table was loaded from (empty for merged tables).
	Source string `json:"source,omitempty"`
	// Columns holds the column names in output order.
	Columns []string `json:"columns"`
	// Rows holds the cells; every row has len(Columns) cells.
	Rows [][]Cell `json:"rows"`
}

// PlaceholderName returns the synthetic name for a blank header at a 0-based position.
func PlaceholderName(pos int) string {
	return PlaceholderPrefix + ": " + strconv.Itoa(pos)
}

// IsPlaceholder reports whether a column name is a placeholder name.
func IsPlaceholder(name string) bool {
	return strings.Contains(name, PlaceholderPrefix)
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.Columns) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// ColumnIndex returns the index of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the cells of column i.
func (t *Table) Column(i int) []Cell {
	out := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			out[r] = row[i]
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := &Table{
		Source:  t.Source,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Cell, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// Select returns a new table containing the given column indices in order.
func (t *Table) Select(indices []int) *Table {
	out := &Table{
		Source:  t.Source,
		Columns: make([]string, len(indices)),
		Rows:    make([][]Cell, len(t.Rows)),
	}
	for j, idx := range indices {
		out.Columns[j] = t.Columns[idx]
	}
	for r, row := range t.Rows {
		nr := make([]Cell, len(indices))
		for j, idx := range indices {
			if idx < len(row) {
				nr[j] = row[idx]
			}
		}
		out.Rows[r] = nr
	}
	return out
}

// RowIsBlank reports whether every cell in the row is blank.
func RowIsBlank(row []Cell) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// UniqueNames makes repeated names unique by suffixing .1, .2, ...
func UniqueNames(columns []string) []string {
	out := make([]string, len(columns))
	seen := make(map[string]int, len(columns))
	taken := make(map[string]bool, len(columns))
	for _, c := range columns {
		taken[c] = true
	}

	for i, c := range columns {
		count, dup := seen[c]
		if !dup {
			seen[c] = 1
			out[i] = c
			continue
		}
		name := c
		for {
			name = c + "." + strconv.Itoa(count)
			count++
			if !taken[name] {
				break
			}
		}
		seen[c] = count
		taken[name] = true
		out[i] = name
	}

	return out
}
