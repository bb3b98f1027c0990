package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/journal"
)

func TestEquityWalksInDateOrder(t *testing.T) {
	t.Parallel()

	// Insertion order deliberately differs from date order.
	trades := []journal.Trade{
		tr("2024-01-03", -30),
		tr("2024-01-01", 100),
		tr("2024-01-02", 50),
	}
	res := Compute(trades)

	eq := res.Series.Equity
	require.Len(t, eq, 3)
	assert.Equal(t, "2024-01-01", eq[0].Date)
	assert.InDelta(t, 100, eq[0].Value, 1e-9)
	assert.InDelta(t, 150, eq[1].Value, 1e-9)
	assert.InDelta(t, 120, eq[2].Value, 1e-9)
}

func TestDrawdownIsNonPositiveAndMatchesPeak(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		tr("2024-01-01", 100),
		tr("2024-01-02", -60),
		tr("2024-01-03", 20),
		tr("2024-01-04", -80),
	}
	res := Compute(trades)

	eq := res.Series.Equity
	dd := res.Series.Drawdown
	require.Len(t, dd, len(eq))

	// drawdown[i] == -(max(equity[0..i]) - equity[i])
	peak := eq[0].Value
	for i := range eq {
		if eq[i].Value > peak {
			peak = eq[i].Value
		}
		assert.InDelta(t, -(peak - eq[i].Value), dd[i].Value, 1e-9)
		assert.LessOrEqual(t, dd[i].Value, 0.0)
	}

	// Peak 100, trough 100-60+20-80 = -20: max drawdown 120.
	assert.InDelta(t, 120, res.Report.MaxDrawdown, 1e-9)
}

func TestDrawdownZeroWhenCurveStartsBelowZero(t *testing.T) {
	t.Parallel()

	// A losing first trade is the running peak; a curve that only recovers
	// from there never draws down.
	trades := []journal.Trade{
		tr("2024-01-01", -50),
		tr("2024-01-02", 20),
	}
	res := Compute(trades)

	dd := res.Series.Drawdown
	require.Len(t, dd, 2)
	assert.InDelta(t, 0, dd[0].Value, 1e-9)
	assert.InDelta(t, 0, dd[1].Value, 1e-9)
	assert.InDelta(t, 0, res.Report.MaxDrawdown, 1e-9)

	eq := res.Series.Equity
	assert.InDelta(t, -50, eq[0].Value, 1e-9)
	assert.InDelta(t, -30, eq[1].Value, 1e-9)
}

func TestDrawdownMeasuredFromNegativeStartPeak(t *testing.T) {
	t.Parallel()

	// Peak -10, trough -40: drawdown 30 even though equity never crossed 0.
	trades := []journal.Trade{
		tr("2024-01-01", -10),
		tr("2024-01-02", -30),
	}
	res := Compute(trades)

	dd := res.Series.Drawdown
	require.Len(t, dd, 2)
	assert.InDelta(t, 0, dd[0].Value, 1e-9)
	assert.InDelta(t, -30, dd[1].Value, 1e-9)
	assert.InDelta(t, 30, res.Report.MaxDrawdown, 1e-9)
}

func TestEquityStableForSameDayTrades(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		{ID: "first", Date: "2024-01-01", Net: 10},
		{ID: "second", Date: "2024-01-01", Net: -4},
	}
	sorted := byDate(trades)
	require.Len(t, sorted, 2)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
}

func TestDailyNetGroupsAndSorts(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		tr("2024-01-02", 5),
		tr("2024-01-01", 10),
		tr("2024-01-02", -2),
	}
	daily := Compute(trades).Series.DailyNet

	require.Len(t, daily, 2)
	assert.Equal(t, "2024-01-01", daily[0].Date)
	assert.InDelta(t, 10, daily[0].Value, 1e-9)
	assert.Equal(t, "2024-01-02", daily[1].Date)
	assert.InDelta(t, 3, daily[1].Value, 1e-9)
}
