package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// detectSequenceColumn returns the index of the first placeholder column
// holding item numbers, or -1. Only the first SequenceScanColumns
// placeholder columns are inspected. Tables that already carry a named
// Item column are left alone.
func (n *Normalizer) detectSequenceColumn(t *models.Table) int {
	if t.ColumnIndex(models.ItemColumn) >= 0 {
		return -1
	}

	scanned := 0
	for i, name := range t.Columns {
		if !models.IsPlaceholder(name) {
			continue
		}
		if scanned >= n.opts.SequenceScanColumns {
			break
		}
		scanned++

		if n.isSequence(t.Column(i)) {
			return i
		}
	}
	return -1
}

// isSequence samples the first non-blank values of a column and accepts it
// when enough of them are numbers and none of those is below one.
func (n *Normalizer) isSequence(cells []models.Cell) bool {
	var (
		sampled int
		numeric int
		minimum = math.Inf(1)
	)
	for _, c := range cells {
		if sampled >= n.opts.SequenceSampleSize {
			break
		}
		if c.IsBlank() {
			continue
		}
		sampled++

		v, ok := numericValue(c)
		if !ok {
			continue
		}
		numeric++
		if v < minimum {
			minimum = v
		}
	}
	return numeric >= n.opts.SequenceMinNumeric && minimum >= 1
}

// numericValue reads a cell as a number: numeric cells directly, text when it
// parses as a float.
func numericValue(c models.Cell) (float64, bool) {
	switch c.Kind {
	case models.KindNumber:
		return c.Number, !math.IsNaN(c.Number)
	case models.KindBool:
		if c.Bool {
			return 1, true
		}
		return 0, true
	case models.KindText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}
