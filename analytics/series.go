package analytics

import (
	"sort"

	"tradelog/journal"
)

// Point is one sample of a charted series.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series holds the three chartable sequences derived from a trade collection.
// All slices are empty, not nil-significant, for an empty collection.
type Series struct {
	Equity   []Point `json:"equity"`
	Drawdown []Point `json:"drawdown"` // emitted non-positive: -(peak - equity)
	DailyNet []Point `json:"dailyNet"`
}

// byDate returns a copy of trades sorted ascending by date. The sort is
// stable, so same-day trades keep their original relative order.
func byDate(trades []journal.Trade) []journal.Trade {
	out := make([]journal.Trade, len(trades))
	copy(out, trades)
	sort.SliceStable(out, func(i, k int) bool { return out[i].Date < out[k].Date })
	return out
}

// equityWalk produces the equity and drawdown series in one linear pass over
// the date-sorted trades and returns the maximum drawdown observed.
func equityWalk(sorted []journal.Trade) (equity, drawdown []Point, maxDD float64) {
	equity = make([]Point, 0, len(sorted))
	drawdown = make([]Point, 0, len(sorted))

	var running, peak float64
	for i, t := range sorted {
		running += t.Net
		// The peak is over equity values actually seen, so a curve that
		// starts below zero has no drawdown until it makes a new low off a
		// real high.
		if i == 0 || running > peak {
			peak = running
		}
		dd := peak - running
		if dd > maxDD {
			maxDD = dd
		}
		equity = append(equity, Point{Date: t.Date, Value: running})
		drawdown = append(drawdown, Point{Date: t.Date, Value: -dd})
	}
	return equity, drawdown, maxDD
}

// dailyNet groups trades by exact date string, sums net per day and returns
// the days ascending.
func dailyNet(trades []journal.Trade) []Point {
	sums := make(map[string]float64)
	for _, t := range trades {
		sums[t.Date] += t.Net
	}

	days := make([]string, 0, len(sums))
	for d := range sums {
		days = append(days, d)
	}
	sort.Strings(days)

	out := make([]Point, 0, len(days))
	for _, d := range days {
		out = append(out, Point{Date: d, Value: sums[d]})
	}
	return out
}
