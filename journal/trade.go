package journal

// DateLayout is the canonical calendar-date format for trade dates.
// Lexicographic order on these strings equals chronological order, which the
// range filter and the chronological sort in analytics rely on.
const DateLayout = "2006-01-02"

// Side of a trade.
type Side string

const (
	Long  Side = "Long"
	Short Side = "Short"
)

// Image is one embedded screenshot payload attached to a trade.
type Image struct {
	Name string `json:"name,omitempty"`
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// Trade is one closed (or manually logged) trade. Net is the authoritative
// realized P&L after commissions and fees; every statistic classifies a trade
// as a win iff Net > 0 (zero counts as a loss).
type Trade struct {
	ID          string  `json:"id"`
	Symbol      string  `json:"symbol"`
	Side        Side    `json:"side"`
	Date        string  `json:"date"` // YYYY-MM-DD, no time component
	Gross       float64 `json:"gross"`
	Commission  float64 `json:"commission"`
	ExchangeFee float64 `json:"exchangeFee"`
	Quantity    int     `json:"quantity"`
	Net         float64 `json:"net"`
	Duration    string  `json:"duration,omitempty"` // free-form H:MM:SS or empty
	Notes       string  `json:"notes,omitempty"`
	Images      []Image `json:"images,omitempty"`
	Source      string  `json:"source"` // "manual" or originating filename
}

// Win reports whether the trade counts as a winner.
func (t Trade) Win() bool { return t.Net > 0 }

// Goals holds the four independent optional targets. A zero value means the
// goal is not set for that dimension; goals are never combined into one score.
type Goals struct {
	MonthlyPnLTarget     float64 `json:"monthlyPnlTarget,omitempty"`
	MaxDailyLossLimit    float64 `json:"maxDailyLossLimit,omitempty"`
	MaxTradesPerDayLimit int     `json:"maxTradesPerDayLimit,omitempty"`
	MinWinRatePct        float64 `json:"minWinRatePercent,omitempty"`
}
