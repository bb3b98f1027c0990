package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradelog/journal"
)

// Cell is one raw sheet cell as delivered by the spreadsheet decoder: a
// string, a number, a time.Time or nil. The parser never sees the original
// binary format.
type Cell any

// Spreadsheet serial dates count days from the 1899-12-30 epoch, which sits
// this many days before the Unix epoch.
const serialEpochOffsetDays = 25569

const secondsPerDay = 86400

// cellString renders any cell as text. nil becomes the empty string.
func cellString(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case time.Time:
		return v.Format(journal.DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

// cellNumber extracts a cell's numeric value when it is already a number.
func cellNumber(c Cell) (float64, bool) {
	switch v := c.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// LenientNumber decodes a numeric cell. Numbers pass through unchanged;
// strings are stripped of everything but digits, '.' and '-' before parsing.
// Anything unparsable yields 0, never an error.
func LenientNumber(c Cell) float64 {
	if n, ok := cellNumber(c); ok {
		return n
	}
	s, ok := c.(string)
	if !ok {
		return 0
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// dateLayouts are tried in order for textual date cells.
var dateLayouts = []string{
	journal.DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006 15:04:05",
	"01/02/2006",
	"2006/01/02",
	"01-02-2006",
	"Jan 2, 2006",
}

// LenientDate decodes a date cell to canonical YYYY-MM-DD. Numeric cells are
// spreadsheet serial day-counts; time.Time cells are rendered directly;
// strings are tried against common layouts. Anything unparsable falls back to
// today.
func LenientDate(c Cell, today time.Time) string {
	if n, ok := cellNumber(c); ok {
		secs := (n - serialEpochOffsetDays) * secondsPerDay
		return time.Unix(int64(secs), 0).UTC().Format(journal.DateLayout)
	}

	switch v := c.(type) {
	case time.Time:
		return v.Format(journal.DateLayout)
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(journal.DateLayout)
			}
		}
	}
	return today.Format(journal.DateLayout)
}

// LenientDuration decodes a holding-duration cell. Strings pass through
// unchanged; numbers are a fraction of a day and are rendered as H:MM:SS with
// zero-padded minutes and seconds; anything else is stringified.
func LenientDuration(c Cell) string {
	if c == nil {
		return ""
	}
	if n, ok := cellNumber(c); ok {
		total := int(n * secondsPerDay)
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	if s, ok := c.(string); ok {
		return s
	}
	return fmt.Sprint(c)
}
