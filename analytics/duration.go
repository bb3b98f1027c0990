package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"tradelog/journal"
)

// ParseClock converts a holding-duration string to total seconds. Accepted
// shapes are H:MM:SS and MM:SS; anything else yields 0 so a malformed cell
// degrades instead of failing the trade.
func ParseClock(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0
	}

	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0
		}
		vals[i] = n
	}

	if len(vals) == 2 {
		return vals[0]*60 + vals[1]
	}
	return vals[0]*3600 + vals[1]*60 + vals[2]
}

// FormatAverage renders an average holding time in seconds as "Xh Ym" when at
// least an hour, otherwise "Xm Ys".
func FormatAverage(seconds float64) string {
	total := int(seconds)
	if total >= 3600 {
		return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
	}
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

// averageDuration averages the parseable, positive durations across trades.
// Trades with an empty or malformed duration are excluded from the average;
// the empty string means no trade had a usable duration.
func averageDuration(trades []journal.Trade) string {
	var sum, n int
	for _, t := range trades {
		if t.Duration == "" {
			continue
		}
		if secs := ParseClock(t.Duration); secs > 0 {
			sum += secs
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return FormatAverage(float64(sum) / float64(n))
}
