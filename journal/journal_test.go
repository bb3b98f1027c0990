package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trade(id, symbol, date string, net float64) Trade {
	return Trade{ID: id, Symbol: symbol, Side: Long, Date: date, Net: net, Source: "manual"}
}

func TestJournalAddGet(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "AAPL", "2024-01-15", 103.50)))

	got, err := j.Get("T1")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
	assert.InDelta(t, 103.50, got.Net, 1e-9)

	_, err = j.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJournalAddRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "AAPL", "2024-01-15", 1)))
	assert.ErrorIs(t, j.Add(trade("T1", "MSFT", "2024-01-16", 2)), ErrDuplicateID)
	assert.Equal(t, 1, j.Len())
}

func TestJournalPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T3", "C", "2024-01-03", 1)))
	require.NoError(t, j.Add(trade("T1", "A", "2024-01-01", 1)))
	require.NoError(t, j.Add(trade("T2", "B", "2024-01-02", 1)))

	trades := j.Trades()
	require.Len(t, trades, 3)
	assert.Equal(t, "T3", trades[0].ID)
	assert.Equal(t, "T1", trades[1].ID)
	assert.Equal(t, "T2", trades[2].ID)
}

func TestJournalUpdateKeepsID(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "AAPL", "2024-01-15", 1)))

	err := j.Update("T1", func(tr *Trade) {
		tr.Notes = "late entry"
		tr.ID = "mutated"
	})
	require.NoError(t, err)

	got, err := j.Get("T1")
	require.NoError(t, err)
	assert.Equal(t, "late entry", got.Notes)
	assert.Equal(t, "T1", got.ID)
}

func TestJournalAppendImageNeverReplaces(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "AAPL", "2024-01-15", 1)))

	// Completions from the pipeline land in arbitrary order; each must append.
	require.NoError(t, j.AppendImage("T1", Image{Name: "exit.png", MIME: "image/jpeg"}))
	require.NoError(t, j.AppendImage("T1", Image{Name: "entry.png", MIME: "image/jpeg"}))

	got, err := j.Get("T1")
	require.NoError(t, err)
	require.Len(t, got.Images, 2)
	assert.Equal(t, "exit.png", got.Images[0].Name)
	assert.Equal(t, "entry.png", got.Images[1].Name)
}

func TestJournalDelete(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "A", "2024-01-01", 1)))
	require.NoError(t, j.Add(trade("T2", "B", "2024-01-02", 2)))

	require.NoError(t, j.Delete("T1"))
	assert.Equal(t, 1, j.Len())
	assert.Equal(t, "T2", j.Trades()[0].ID)

	assert.ErrorIs(t, j.Delete("T1"), ErrNotFound)
}

func TestJournalClear(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "A", "2024-01-01", 1)))
	j.Clear()
	assert.Equal(t, 0, j.Len())
	assert.Empty(t, j.Trades())
}

func TestAddUniqueDropsDuplicates(t *testing.T) {
	t.Parallel()

	j := New()
	require.NoError(t, j.Add(trade("T1", "AAPL", "2024-01-15", 103.50)))

	added, skipped := j.AddUnique([]Trade{
		trade("T2", "AAPL", "2024-01-15", 103.50), // dup of T1 by symbol+date+net
		trade("T3", "AAPL", "2024-01-15", 99.00),  // same day, different net
		trade("T4", "AAPL", "2024-01-15", 99.00),  // dup within the batch
	})

	assert.Equal(t, 1, added)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, 2, j.Len())
}

func TestTradeWinClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, Trade{Net: 0.01}.Win())
	assert.False(t, Trade{Net: 0}.Win(), "zero net counts as a loss")
	assert.False(t, Trade{Net: -5}.Win())
}
