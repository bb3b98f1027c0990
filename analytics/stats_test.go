package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/journal"
)

func tr(date string, net float64) journal.Trade {
	return journal.Trade{ID: "id-" + date + "-x", Symbol: "AAPL", Side: journal.Long,
		Date: date, Net: net, Source: "manual"}
}

func TestComputeEmptyCollection(t *testing.T) {
	t.Parallel()

	res := Compute(nil)
	r := res.Report

	assert.False(t, r.HasTrades)
	assert.Zero(t, r.Total)
	assert.Zero(t, r.WinRate)
	assert.Zero(t, r.ProfitFactor)
	assert.Zero(t, r.Expectancy)
	assert.Empty(t, res.Series.Equity)
	assert.Empty(t, res.Series.Drawdown)
	assert.Empty(t, res.Series.DailyNet)
}

func TestComputePartitionInvariant(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		tr("2024-01-01", 100),
		tr("2024-01-02", -50),
		tr("2024-01-03", 0), // zero is a loss
		tr("2024-01-04", 25),
	}
	r := Compute(trades).Report

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Wins)
	assert.Equal(t, 2, r.Losses)
	assert.Equal(t, r.Total, r.Wins+r.Losses)
	assert.InDelta(t, 50.0, r.WinRate, 1e-9)
}

func TestComputeSums(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		{ID: "a", Date: "2024-01-01", Net: 100, Commission: -1, ExchangeFee: -0.5},
		{ID: "b", Date: "2024-01-02", Net: -40, Commission: -1, ExchangeFee: -0.5},
		{ID: "c", Date: "2024-01-03", Net: 60, Commission: -2, ExchangeFee: 0},
	}
	r := Compute(trades).Report

	assert.InDelta(t, 160, r.GrossProfit, 1e-9)
	assert.InDelta(t, 40, r.GrossLoss, 1e-9)
	assert.InDelta(t, 120, r.NetTotal, 1e-9)
	assert.InDelta(t, 5, r.TotalCommissions, 1e-9)
	assert.InDelta(t, 100, r.BestTrade, 1e-9)
	assert.InDelta(t, -40, r.WorstTrade, 1e-9)
	assert.InDelta(t, 4.0, r.ProfitFactor, 1e-9) // 160/40
}

func TestProfitFactorEdgeCases(t *testing.T) {
	t.Parallel()

	// No losses, some profit: infinite.
	r := Compute([]journal.Trade{tr("2024-01-01", 10)}).Report
	assert.True(t, math.IsInf(r.ProfitFactor, 1))

	// Both sums zero: zero. A single zero-net trade is a loss with zero loss sum.
	r = Compute([]journal.Trade{tr("2024-01-01", 0)}).Report
	assert.Zero(t, r.ProfitFactor)
}

func TestComputeExpectancy(t *testing.T) {
	t.Parallel()

	// 50% win rate, avg win 100, avg loss 40: 0.5*100 - 0.5*40 = 30.
	trades := []journal.Trade{
		tr("2024-01-01", 100),
		tr("2024-01-02", -40),
	}
	r := Compute(trades).Report

	assert.InDelta(t, 100, r.AvgWin, 1e-9)
	assert.InDelta(t, 40, r.AvgLoss, 1e-9)
	assert.InDelta(t, 30, r.Expectancy, 1e-9)
	assert.InDelta(t, 2.5, r.AvgRR, 1e-9)
}

func TestComputeAvgRRZeroWithoutLosses(t *testing.T) {
	t.Parallel()

	r := Compute([]journal.Trade{tr("2024-01-01", 10)}).Report
	assert.Zero(t, r.AvgRR)
}

func TestComputeBestWorstSingleTrade(t *testing.T) {
	t.Parallel()

	r := Compute([]journal.Trade{tr("2024-01-01", -5)}).Report
	require.True(t, r.HasTrades)
	assert.InDelta(t, -5, r.BestTrade, 1e-9)
	assert.InDelta(t, -5, r.WorstTrade, 1e-9)
}
