package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradelog/journal"
)

var importDay = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func standardHeader() []Cell {
	return []Cell{"Symbol", "Type", "Date", "Gross", "Comm", "ECN Fee", "Qty", "Net", "Held"}
}

func TestParseStandardSheet(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		standardHeader(),
		{"AAPL", "Long", "2024-01-15", 105.00, -1.00, -0.50, 100, 103.50, "0:05:30"},
	}
	trades, err := Parse(sheet, "executions.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	tr := trades[0]
	assert.NotEmpty(t, tr.ID)
	assert.Equal(t, "AAPL", tr.Symbol)
	assert.Equal(t, journal.Long, tr.Side)
	assert.Equal(t, "2024-01-15", tr.Date)
	assert.InDelta(t, 105.00, tr.Gross, 1e-9)
	assert.InDelta(t, -1.00, tr.Commission, 1e-9)
	assert.InDelta(t, -0.50, tr.ExchangeFee, 1e-9)
	assert.Equal(t, 100, tr.Quantity)
	assert.InDelta(t, 103.50, tr.Net, 1e-9)
	assert.Equal(t, "0:05:30", tr.Duration)
	assert.Equal(t, "executions.csv", tr.Source)
	assert.Empty(t, tr.Notes)
	assert.Empty(t, tr.Images)
}

func TestParseHeaderBelowPreamble(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		{"Account Statement"},
		{"Period", "2024-01-01 to 2024-01-31"},
		{},
		standardHeader(),
		{"MSFT", "Short", "2024-01-16", -20.00, -1.00, -0.25, 50, -21.25, ""},
	}
	trades, err := Parse(sheet, "statement.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, journal.Short, trades[0].Side)
	assert.InDelta(t, -21.25, trades[0].Net, 1e-9)
}

func TestParseHeaderNotFound(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		{"Ticker", "P&L"},
		{"AAPL", 10.0},
	}
	_, err := Parse(sheet, "odd.csv", importDay)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestParseHeaderScanWindow(t *testing.T) {
	t.Parallel()

	// Header on row 21 is out of the scanned window.
	sheet := make([][]Cell, 0, 22)
	for i := 0; i < 20; i++ {
		sheet = append(sheet, []Cell{"preamble"})
	}
	sheet = append(sheet, standardHeader())
	_, err := Parse(sheet, "deep.csv", importDay)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestParseSkipsRowsWithoutSymbol(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		standardHeader(),
		{"AAPL", "Long", "2024-01-15", 10.0, 0.0, 0.0, 1, 10.0, ""},
		{},
		{"", "Long", "2024-01-16", 5.0, 0.0, 0.0, 1, 5.0, ""},
		{nil, "Long", "2024-01-17", 5.0, 0.0, 0.0, 1, 5.0, ""},
		{"Total", "", "", "", "", "", "", 20.0, ""},
	}
	trades, err := Parse(sheet, "executions.csv", importDay)
	require.NoError(t, err)
	// The "Total" footer row still has a symbol cell; only truly empty
	// symbol cells are skipped.
	require.Len(t, trades, 2)
	assert.Equal(t, "AAPL", trades[0].Symbol)
	assert.Equal(t, "TOTAL", trades[1].Symbol)
}

func TestParseMissingColumnsFallBack(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		{"Symbol", "Net"},
		{"aapl", "103.50"},
	}
	trades, err := Parse(sheet, "minimal.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 1)

	tr := trades[0]
	assert.Equal(t, "AAPL", tr.Symbol, "symbol upper-cased")
	assert.Equal(t, journal.Long, tr.Side, "side defaults to Long")
	assert.Equal(t, importDay.Format(journal.DateLayout), tr.Date, "date defaults to today")
	assert.InDelta(t, 103.50, tr.Net, 1e-9)
	assert.InDelta(t, 103.50, tr.Gross, 1e-9, "gross defaults to net")
	assert.Zero(t, tr.Commission)
	assert.Zero(t, tr.ExchangeFee)
	assert.Zero(t, tr.Quantity)
	assert.Empty(t, tr.Duration)
}

func TestParseEmptySheetAfterHeader(t *testing.T) {
	t.Parallel()

	trades, err := Parse([][]Cell{standardHeader()}, "empty.csv", importDay)
	require.NoError(t, err)
	assert.Empty(t, trades, "no trades is not an error")
}

func TestParseColumnRuleOrder(t *testing.T) {
	t.Parallel()

	// "Net P&L" must resolve to net, not be stolen by gross; "Gross P&L"
	// resolves to gross.
	sheet := [][]Cell{
		{"Symbol", "Gross P&L", "Net P&L"},
		{"AAPL", "105", "103.5"},
	}
	trades, err := Parse(sheet, "pl.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.InDelta(t, 105, trades[0].Gross, 1e-9)
	assert.InDelta(t, 103.5, trades[0].Net, 1e-9)
}

func TestParseAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	sheet := [][]Cell{
		standardHeader(),
		{"AAPL", "Long", "2024-01-15", 10.0, 0.0, 0.0, 1, 10.0, ""},
		{"AAPL", "Long", "2024-01-15", 10.0, 0.0, 0.0, 1, 10.0, ""},
	}
	trades, err := Parse(sheet, "dups.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.NotEqual(t, trades[0].ID, trades[1].ID)
}
