// Package merger concatenates normalized tables by column name.
package merger

import (
	"errors"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// ErrNoTables indicates there was nothing to merge.
var ErrNoTables = errors.New("no tables to merge")

// Registry assigns output positions to column names in first-seen order.
type Registry struct {
	index map[string]int
	names []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register returns the position of name, appending it when unseen.
func (r *Registry) Register(name string) int {
	if i, ok := r.index[name]; ok {
		return i
	}
	i := len(r.names)
	r.index[name] = i
	r.names = append(r.names, name)
	return i
}

// Lookup returns the position of name and whether it is registered.
func (r *Registry) Lookup(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

// Names returns the registered names in position order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.names) }

// Merge concatenates tables in the given order. The first table fixes the
// leading column order; columns introduced later are appended as they are
// first seen. Cells are blank where a table lacks a column.
func Merge(tables []*models.Table) (*models.Table, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	reg := NewRegistry()
	positions := make([][]int, len(tables))
	total := 0
	for i, t := range tables {
		pos := make([]int, t.Width())
		for j, name := range t.Columns {
			pos[j] = reg.Register(name)
		}
		positions[i] = pos
		total += t.Len()
	}

	width := reg.Len()
	merged := &models.Table{
		Columns: reg.Names(),
		Rows:    make([][]models.Cell, 0, total),
	}
	for i, t := range tables {
		for _, row := range t.Rows {
			out := make([]models.Cell, width)
			for j, c := range row {
				if j < len(positions[i]) {
					out[positions[i][j]] = c
				}
			}
			merged.Rows = append(merged.Rows, out)
		}
	}

	return merged, nil
}
