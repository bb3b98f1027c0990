package journal

import (
	"fmt"
	"strconv"
	"strings"
)

// Journal is the in-memory trade collection: an ordered map keyed by trade id.
// Insertion order is preserved so default listings and sort tie-breaks are
// stable; lookup, update and delete are O(1). The journal is only ever mutated
// from the single-threaded main flow, so it carries no lock.
type Journal struct {
	order []string
	byID  map[string]*Trade
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{byID: make(map[string]*Trade)}
}

// FromTrades builds a journal from an ordered trade slice, e.g. a loaded
// document. Records with a duplicate id are dropped rather than reassigned.
func FromTrades(trades []Trade) *Journal {
	j := New()
	for _, t := range trades {
		_ = j.Add(t)
	}
	return j
}

// Len returns the number of trades.
func (j *Journal) Len() int { return len(j.order) }

// Add appends a trade. The id must be set and unique.
func (j *Journal) Add(t Trade) error {
	if t.ID == "" {
		return fmt.Errorf("trade has no id")
	}
	if _, ok := j.byID[t.ID]; ok {
		return fmt.Errorf("trade %q: %w", t.ID, ErrDuplicateID)
	}
	j.byID[t.ID] = &t
	j.order = append(j.order, t.ID)
	return nil
}

// Get returns the trade with the given id.
func (j *Journal) Get(id string) (Trade, error) {
	t, ok := j.byID[id]
	if !ok {
		return Trade{}, fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	return *t, nil
}

// Update applies fn to the trade with the given id. The id itself is
// immutable; any change fn makes to it is discarded.
func (j *Journal) Update(id string, fn func(*Trade)) error {
	t, ok := j.byID[id]
	if !ok {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	keep := t.ID
	fn(t)
	t.ID = keep
	return nil
}

// AppendImage attaches one image to the trade. Completions from the image
// pipeline arrive in no particular order, so attachment is always an append,
// never a replace-by-index.
func (j *Journal) AppendImage(id string, img Image) error {
	return j.Update(id, func(t *Trade) {
		t.Images = append(t.Images, img)
	})
}

// Delete removes the trade with the given id.
func (j *Journal) Delete(id string) error {
	if _, ok := j.byID[id]; !ok {
		return fmt.Errorf("trade %q: %w", id, ErrNotFound)
	}
	delete(j.byID, id)
	for i, oid := range j.order {
		if oid == id {
			j.order = append(j.order[:i], j.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every trade.
func (j *Journal) Clear() {
	j.order = j.order[:0]
	j.byID = make(map[string]*Trade)
}

// Trades returns the trades in insertion order. The slice and its records are
// copies; mutating them does not touch the journal.
func (j *Journal) Trades() []Trade {
	out := make([]Trade, 0, len(j.order))
	for _, id := range j.order {
		out = append(out, *j.byID[id])
	}
	return out
}

// AddUnique adds the given trades, silently dropping any that duplicate an
// existing record. Two trades are duplicates iff symbol, date and net all
// match exactly. Returns how many were added and how many were skipped.
func (j *Journal) AddUnique(trades []Trade) (added, skipped int) {
	seen := make(map[string]bool, len(j.order))
	for _, id := range j.order {
		seen[dedupKey(*j.byID[id])] = true
	}
	for _, t := range trades {
		k := dedupKey(t)
		if seen[k] {
			skipped++
			continue
		}
		if err := j.Add(t); err != nil {
			skipped++
			continue
		}
		seen[k] = true
		added++
	}
	return added, skipped
}

func dedupKey(t Trade) string {
	return strings.Join([]string{
		t.Symbol,
		t.Date,
		strconv.FormatFloat(t.Net, 'f', -1, 64),
	}, "|")
}
