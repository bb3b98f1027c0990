package report

import (
	"errors"
	"strings"
	"time"

	"tradelog/journal"
	"tradelog/pkg/id"
)

// ErrHeaderNotFound means no row in the scanned window carried a
// "symbol"-like header. It is a per-file error: one bad report in a batch
// does not stop the others.
var ErrHeaderNotFound = errors.New("no symbol header found")

// headerScanRows bounds how deep Parse looks for the header row. Broker
// exports put a preamble (account, date range) above the table, never more
// than a handful of rows.
const headerScanRows = 20

// columns locates each semantic column in the header row. A zero colRef means
// the column is absent and the field falls back to its documented default.
type columns struct {
	symbol     colRef
	side       colRef
	date       colRef
	gross      colRef
	commission colRef
	fee        colRef
	quantity   colRef
	net        colRef
	duration   colRef
}

// colRef is an explicit "found at index i" / "not found" marker.
type colRef struct {
	found bool
	index int
}

// cell returns the referenced cell of row, or nil when the column is absent
// or the row is short.
func (c colRef) cell(row []Cell) Cell {
	if !c.found || c.index >= len(row) {
		return nil
	}
	return row[c.index]
}

// columnRules map header text to semantic columns. Rules are evaluated in
// this order and the first header cell satisfying a rule wins, so e.g. a
// "Net P&L" column is not claimed by the gross rule.
var columnRules = []struct {
	assign func(*columns, colRef)
	match  func(h string) bool
}{
	{func(c *columns, r colRef) { c.symbol = r }, func(h string) bool {
		return h == "symbol"
	}},
	{func(c *columns, r colRef) { c.side = r }, func(h string) bool {
		return containsAny(h, "type", "side", "b/s")
	}},
	{func(c *columns, r colRef) { c.date = r }, func(h string) bool {
		return containsAny(h, "date", "time", "open")
	}},
	{func(c *columns, r colRef) { c.gross = r }, func(h string) bool {
		return h == "gross" || strings.Contains(h, "gross p")
	}},
	{func(c *columns, r colRef) { c.commission = r }, func(h string) bool {
		return strings.Contains(h, "comm")
	}},
	{func(c *columns, r colRef) { c.fee = r }, func(h string) bool {
		return containsAny(h, "ecn", "fee")
	}},
	{func(c *columns, r colRef) { c.quantity = r }, func(h string) bool {
		return containsAny(h, "qty", "shares", "quantity")
	}},
	{func(c *columns, r colRef) { c.net = r }, func(h string) bool {
		return h == "net" || strings.Contains(h, "net p")
	}},
	{func(c *columns, r colRef) { c.duration = r }, func(h string) bool {
		return containsAny(h, "held", "duration")
	}},
}

func containsAny(h string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(h, sub) {
			return true
		}
	}
	return false
}

// Parse converts a raw decoded sheet into trade records. source tags each
// record's provenance (the uploaded filename); today supplies the fallback
// date for rows with no parsable date. Rows without a symbol are skipped; an
// empty result is not an error.
func Parse(sheet [][]Cell, source string, today time.Time) ([]journal.Trade, error) {
	headerIdx, cols, err := findHeader(sheet)
	if err != nil {
		return nil, err
	}

	var trades []journal.Trade
	for _, row := range sheet[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		symbol := strings.ToUpper(strings.TrimSpace(cellString(cols.symbol.cell(row))))
		if symbol == "" {
			continue
		}

		net := LenientNumber(cols.net.cell(row))
		gross := net
		if cols.gross.found {
			gross = LenientNumber(cols.gross.cell(row))
		}

		date := today.Format(journal.DateLayout)
		if cols.date.found {
			date = LenientDate(cols.date.cell(row), today)
		}

		trades = append(trades, journal.Trade{
			ID:          id.New(),
			Symbol:      symbol,
			Side:        parseSide(cellString(cols.side.cell(row))),
			Date:        date,
			Gross:       gross,
			Commission:  LenientNumber(cols.commission.cell(row)),
			ExchangeFee: LenientNumber(cols.fee.cell(row)),
			Quantity:    int(LenientNumber(cols.quantity.cell(row))),
			Net:         net,
			Duration:    LenientDuration(cols.duration.cell(row)),
			Source:      source,
		})
	}
	return trades, nil
}

// findHeader scans the first headerScanRows rows for one containing a cell
// whose lowercase text contains "symbol", then resolves the column layout
// from that row.
func findHeader(sheet [][]Cell) (int, columns, error) {
	limit := len(sheet)
	if limit > headerScanRows {
		limit = headerScanRows
	}

	for i := 0; i < limit; i++ {
		isHeader := false
		for _, c := range sheet[i] {
			if strings.Contains(strings.ToLower(cellString(c)), "symbol") {
				isHeader = true
				break
			}
		}
		if !isHeader {
			continue
		}

		headers := make([]string, len(sheet[i]))
		for k, c := range sheet[i] {
			headers[k] = strings.ToLower(strings.TrimSpace(cellString(c)))
		}

		var cols columns
		for _, rule := range columnRules {
			for k, h := range headers {
				if rule.match(h) {
					rule.assign(&cols, colRef{found: true, index: k})
					break
				}
			}
		}
		return i, cols, nil
	}
	return 0, columns{}, ErrHeaderNotFound
}

func parseSide(s string) journal.Side {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "sell", "s":
		return journal.Short
	default:
		return journal.Long
	}
}
