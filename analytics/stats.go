package analytics

import (
	"math"

	"tradelog/journal"
)

// Report is the aggregate statistics block for a (filtered) trade collection.
// HasTrades distinguishes the empty collection from a flat one; when false the
// numeric fields are all zero and BestTrade/WorstTrade are meaningless.
type Report struct {
	Total  int
	Wins   int
	Losses int

	GrossProfit float64 // sum of winning nets
	GrossLoss   float64 // |sum of losing nets|, netted first then absoluted
	NetTotal    float64

	WinRate      float64 // percent
	AvgWin       float64
	AvgLoss      float64
	ProfitFactor float64 // +Inf when GrossLoss is 0 and GrossProfit > 0
	Expectancy   float64
	AvgRR        float64

	BestTrade  float64
	WorstTrade float64
	HasTrades  bool

	MaxDrawdown      float64 // positive magnitude
	TotalCommissions float64
	AvgDuration      string // "Xh Ym" / "Xm Ys", empty when nothing parses
}

// Result bundles the statistics report with the chartable series.
type Result struct {
	Report Report
	Series Series
}

// Compute derives the full dashboard result for an already-filtered trade
// collection. Every input, including the empty collection, is valid; the
// engine never divides by zero and never panics.
func Compute(trades []journal.Trade) Result {
	r := Report{Total: len(trades)}

	var lossSum float64
	for i, t := range trades {
		r.NetTotal += t.Net
		r.TotalCommissions += math.Abs(t.Commission) + math.Abs(t.ExchangeFee)

		if t.Win() {
			r.Wins++
			r.GrossProfit += t.Net
		} else {
			r.Losses++
			lossSum += t.Net
		}

		if i == 0 || t.Net > r.BestTrade {
			r.BestTrade = t.Net
		}
		if i == 0 || t.Net < r.WorstTrade {
			r.WorstTrade = t.Net
		}
	}
	r.GrossLoss = math.Abs(lossSum)
	r.HasTrades = r.Total > 0

	if r.Total > 0 {
		r.WinRate = float64(r.Wins) / float64(r.Total) * 100
	}
	if r.Wins > 0 {
		r.AvgWin = r.GrossProfit / float64(r.Wins)
	}
	if r.Losses > 0 {
		r.AvgLoss = r.GrossLoss / float64(r.Losses)
	}

	switch {
	case r.GrossLoss > 0:
		r.ProfitFactor = r.GrossProfit / r.GrossLoss
	case r.GrossProfit > 0:
		r.ProfitFactor = math.Inf(1)
	default:
		r.ProfitFactor = 0
	}

	p := r.WinRate / 100
	r.Expectancy = p*r.AvgWin - (1-p)*r.AvgLoss

	if r.AvgLoss > 0 {
		r.AvgRR = r.AvgWin / r.AvgLoss
	}

	r.AvgDuration = averageDuration(trades)

	sorted := byDate(trades)
	equity, drawdown, maxDD := equityWalk(sorted)
	r.MaxDrawdown = maxDD

	return Result{
		Report: r,
		Series: Series{
			Equity:   equity,
			Drawdown: drawdown,
			DailyNet: dailyNet(trades),
		},
	}
}
