package journal

// FilterRange narrows trades to those whose date falls inside the inclusive
// [from, to] window. An empty bound is unbounded on that side. Comparison is
// plain string comparison, which is correct because dates are normalized to
// YYYY-MM-DD. Relative order is preserved; with both bounds empty the result
// is an identical copy of the input.
func FilterRange(trades []Trade, from, to string) []Trade {
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		if from != "" && t.Date < from {
			continue
		}
		if to != "" && t.Date > to {
			continue
		}
		out = append(out, t)
	}
	return out
}
