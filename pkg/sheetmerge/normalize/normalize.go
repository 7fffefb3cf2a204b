// Package normalize reconciles the column layout of one loaded export into
// the canonical schema shared by all files of a merge.
package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// Options configures column detection. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// SequenceScanColumns is how many placeholder columns are inspected for
	// a sequence-number column.
	SequenceScanColumns int `yaml:"sequence_scan_columns" split_words:"true" validate:"min=0"`
	// SequenceSampleSize is how many non-blank values of a candidate are sampled.
	SequenceSampleSize int `yaml:"sequence_sample_size" split_words:"true" validate:"min=1"`
	// SequenceMinNumeric is how many sampled values must parse as numbers.
	SequenceMinNumeric int `yaml:"sequence_min_numeric" split_words:"true" validate:"min=1"`
	// BirthDateTokens must all appear in a column name for Item to follow it.
	BirthDateTokens []string `yaml:"birth_date_tokens" split_words:"true" validate:"min=1"`
	// DateTokens select the columns whose values are reformatted as dates.
	DateTokens []string `yaml:"date_tokens" split_words:"true" validate:"min=1"`
}

// DefaultOptions returns the detection settings for the payroll exports.
func DefaultOptions() Options {
	return Options{
		SequenceScanColumns: 5,
		SequenceSampleSize:  10,
		SequenceMinNumeric:  3,
		BirthDateTokens:     []string{"fecha", "nac"},
		DateTokens:          []string{"nacimiento", "fecha"},
	}
}

// Normalizer applies the column reconciliation steps to loaded tables.
type Normalizer struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Normalizer. A nil logger falls back to slog.Default.
func New(opts Options, logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{opts: opts, logger: logger}
}

// Normalize returns a new table in the canonical schema together with
// human-readable notes about the decisions taken. The input is not modified.
// Malformed cells never cause an error.
func (n *Normalizer) Normalize(in *models.Table) (*models.Table, []string) {
	var notes []string
	note := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		notes = append(notes, msg)
		n.logger.Debug(msg, slog.String("file", in.Source))
	}

	t := in.Clone()
	for i, c := range t.Columns {
		t.Columns[i] = CleanHeader(c)
	}
	t.Columns = models.UniqueNames(t.Columns)

	seqIdx := n.detectSequenceColumn(t)

	keep := make([]int, 0, t.Width())
	for i, c := range t.Columns {
		if !models.IsPlaceholder(c) || i == seqIdx {
			keep = append(keep, i)
		}
	}
	if seqIdx >= 0 {
		note("column %q renamed to %s", t.Columns[seqIdx], models.ItemColumn)
		t.Columns[seqIdx] = models.ItemColumn
	} else {
		note("no sequence column found")
	}
	t = t.Select(keep)

	t = dropEmptyColumns(t)
	t = n.placeItem(t, note)

	for i, c := range t.Columns {
		if !n.isDateColumn(c) {
			continue
		}
		for _, row := range t.Rows {
			row[i] = models.Text(FormatDate(row[i]))
		}
		note("dates formatted in column %q", c)
	}

	kept := t.Rows[:0:0]
	dropped := 0
	for _, row := range t.Rows {
		if RowContains(row, FuncionarioTotalMarker) && !RowContains(row, StructureTotalMarker) {
			dropped++
			continue
		}
		if models.RowIsBlank(row) {
			continue
		}
		kept = append(kept, row)
	}
	if dropped > 0 {
		note("%d %q rows dropped", dropped, FuncionarioTotalMarker)
	}
	t.Rows = kept

	return t, notes
}

// CleanHeader trims a column name and collapses embedded newlines to spaces.
func CleanHeader(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "\r\n", " ")
	return strings.ReplaceAll(name, "\n", " ")
}

// placeItem ensures an Item column exists and sits right after the first
// birth-date column, or last when there is none.
func (n *Normalizer) placeItem(t *models.Table, note func(string, ...interface{})) *models.Table {
	itemIdx := t.ColumnIndex(models.ItemColumn)
	if itemIdx < 0 {
		t = appendBlankColumn(t, models.ItemColumn)
		itemIdx = t.Width() - 1
	}

	order := make([]int, 0, t.Width())
	for i := range t.Columns {
		if i != itemIdx {
			order = append(order, i)
		}
	}

	anchor := -1
	for pos, i := range order {
		if n.isBirthDateColumn(t.Columns[i]) {
			anchor = pos
			break
		}
	}
	if anchor >= 0 {
		note("%s placed after %q", models.ItemColumn, t.Columns[order[anchor]])
		order = append(order[:anchor+1], append([]int{itemIdx}, order[anchor+1:]...)...)
	} else {
		note("%s placed last", models.ItemColumn)
		order = append(order, itemIdx)
	}

	return t.Select(order)
}

func (n *Normalizer) isBirthDateColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, tok := range n.opts.BirthDateTokens {
		if !strings.Contains(lower, strings.ToLower(tok)) {
			return false
		}
	}
	return len(n.opts.BirthDateTokens) > 0
}

func (n *Normalizer) isDateColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, tok := range n.opts.DateTokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

func dropEmptyColumns(t *models.Table) *models.Table {
	keep := make([]int, 0, t.Width())
	for i := range t.Columns {
		for _, row := range t.Rows {
			if !row[i].IsBlank() {
				keep = append(keep, i)
				break
			}
		}
	}
	return t.Select(keep)
}

func appendBlankColumn(t *models.Table, name string) *models.Table {
	t.Columns = append(t.Columns, name)
	for i, row := range t.Rows {
		t.Rows[i] = append(row, models.Text(""))
	}
	return t
}
