package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetmerge-go/pkg/sheetmerge/models"
)

// dateLayouts are tried in order; the first that parses wins. Day-first
// comes before month-first, so 03/04/2024 reads as 3 April.
var dateLayouts = []struct {
	layout string
	// shape, when set, must match the text before the layout is tried.
	shape *regexp.Regexp
}{
	// YYYY-MM-DD HH:MM:SS. time.Parse accepts a fraction after the seconds
	// field, which this format does not allow.
	{"2006-1-2 15:4:5", regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2} \d{1,2}:\d{1,2}:\d{1,2}$`)},
	{"2006-1-2", nil}, // YYYY-MM-DD
	{"2/1/2006", nil}, // DD/MM/YYYY
	{"1/2/2006", nil}, // MM/DD/YYYY
	{"2-1-2006", nil}, // DD-MM-YYYY
	{"2006/1/2", nil}, // YYYY/MM/DD
}

// serialEpoch is day zero of spreadsheet serial dates, two days before
// 1900-01-01 to absorb the 1900 leap-year bug.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// FormatDate renders a cell as D/M/YYYY without zero padding. Values that
// cannot be read as a date come back as their original text.
func FormatDate(c models.Cell) string {
	if c.IsBlank() {
		return ""
	}
	if c.Kind == models.KindDate {
		return canonical(c.Time)
	}

	original := c.String()
	text := strings.TrimSpace(original)

	if d, m, y, ok := splitSlashDate(text); ok {
		return fmt.Sprintf("%d/%d/%d", d, m, y)
	}

	for _, d := range dateLayouts {
		if d.shape != nil && !d.shape.MatchString(text) {
			continue
		}
		if t, err := time.Parse(d.layout, text); err == nil {
			return canonical(t)
		}
	}

	if looksNumeric(text) {
		if t, ok := serialToTime(text); ok {
			return canonical(t)
		}
		return original
	}

	return text
}

func canonical(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// splitSlashDate accepts A/B/C with A in [1,31], B in [1,12] and C > 1900.
// Day-of-month is not checked against the month length.
func splitSlashDate(text string) (day, month, year int, ok bool) {
	if !strings.Contains(text, "/") {
		return 0, 0, 0, false
	}
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	day, month, year = nums[0], nums[1], nums[2]
	if day < 1 || day > 31 || month < 1 || month > 12 || year <= 1900 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

// looksNumeric reports whether the text is made of digits once every '.'
// and '-' is removed.
func looksNumeric(text string) bool {
	stripped := strings.NewReplacer(".", "", "-", "").Replace(text)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// serialToTime converts a day count from serialEpoch. Offsets that do not
// fit in a nanosecond duration are rejected.
func serialToTime(text string) (time.Time, bool) {
	days, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(days) || math.IsInf(days, 0) {
		return time.Time{}, false
	}
	ns := days * float64(24*time.Hour)
	if ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return time.Time{}, false
	}
	return serialEpoch.Add(time.Duration(ns)), true
}
