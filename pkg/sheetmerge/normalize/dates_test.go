package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want string
	}{
		{"blank", models.Empty(), ""},
		{"whitespace", models.Text("  "), ""},
		{"date cell", models.Date(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)), "15/5/1990"},
		{"iso", models.Text("2024-03-04"), "4/3/2024"},
		{"iso with time", models.Text("2024-03-04 10:30:00"), "4/3/2024"},
		{"fractional seconds", models.Text("2024-03-04 10:00:00.5"), "2024-03-04 10:00:00.5"},
		{"comma fraction", models.Text("2024-03-04 10:00:00,123"), "2024-03-04 10:00:00,123"},
		{"day first", models.Text("03/04/2024"), "3/4/2024"},
		{"already canonical", models.Text("3/4/2024"), "3/4/2024"},
		{"month first fallback", models.Text("12/25/2024"), "25/12/2024"},
		{"dashed", models.Text("15-05-1990"), "15/5/1990"},
		{"year first slashes", models.Text("1990/05/15"), "15/5/1990"},
		{"serial number", models.Number(45000), "15/3/2023"},
		{"serial text", models.Text("45000"), "15/3/2023"},
		{"serial fraction", models.Number(45000.75), "15/3/2023"},
		{"padded text", models.Text(" 03/04/2024 "), "3/4/2024"},
		{"unparseable", models.Text("sin fecha"), "sin fecha"},
		{"impossible", models.Text("13/25/2024"), "13/25/2024"},
		{"tiny number", models.Number(1.5e-5), "1.5e-05"},
		{"serial overflow", models.Text("99999999999"), "99999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.cell))
		})
	}
}

func TestFormatDateIdempotent(t *testing.T) {
	inputs := []models.Cell{
		models.Text("2024-03-04"),
		models.Text("03/04/2024"),
		models.Text("12/25/2024"),
		models.Number(45000),
		models.Text("sin fecha"),
	}

	for _, in := range inputs {
		once := FormatDate(in)
		assert.Equal(t, once, FormatDate(models.Text(once)), "input %v", in)
	}
}

func TestSplitSlashDate(t *testing.T) {
	d, m, y, ok := splitSlashDate("31/2/2024")
	assert.True(t, ok)
	assert.Equal(t, []int{31, 2, 2024}, []int{d, m, y})

	for _, s := range []string{"1/1/1900", "0/1/2024", "1/13/2024", "1/1", "a/b/c", "2024-01-01"} {
		_, _, _, ok := splitSlashDate(s)
		assert.False(t, ok, s)
	}
}

func TestLooksNumeric(t *testing.T) {
	assert.True(t, looksNumeric("45000"))
	assert.True(t, looksNumeric("45000.5"))
	assert.True(t, looksNumeric("-3"))
	assert.False(t, looksNumeric(""))
	assert.False(t, looksNumeric("--"))
	assert.False(t, looksNumeric("1e5"))
}
