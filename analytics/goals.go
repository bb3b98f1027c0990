package analytics

import (
	"math"
	"time"

	"tradelog/journal"
)

// Status tiers for goal progress.
type Status string

const (
	StatusAchieved Status = "achieved"
	StatusOnTrack  Status = "on-track"
	StatusWarning  Status = "warning"
	StatusBehind   Status = "behind"
	StatusWithin   Status = "within"
	StatusExceeded Status = "exceeded"
	StatusClose    Status = "close"
)

const (
	pnlAchievedPct       = 100.0
	pnlOnTrackPct        = 60.0
	pnlWarningPct        = 30.0
	winRateCloseFraction = 0.8
)

// GoalStatus is the evaluation of one configured goal. Configured is false
// when the goal is unset, so a dashboard can always render a stable four-slot
// panel. RawPct keeps the unclamped progress; BarPct is clamped to [0, 100]
// for a progress bar.
type GoalStatus struct {
	Configured bool
	Status     Status
	Value      float64 // measured value: month net, worst day, busiest count, win rate
	Target     float64
	RawPct     float64
	BarPct     float64
}

// GoalReport evaluates each goal independently; goals are never combined.
type GoalReport struct {
	MonthlyPnL   GoalStatus
	DailyLoss    GoalStatus
	TradesPerDay GoalStatus
	WinRate      GoalStatus
}

// EvaluateGoals scores the configured goals against the current calendar
// month, [first of month, today] inclusive. The caller supplies today so the
// evaluation stays a pure function.
func EvaluateGoals(trades []journal.Trade, g journal.Goals, today time.Time) GoalReport {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	month := journal.FilterRange(trades,
		first.Format(journal.DateLayout),
		today.Format(journal.DateLayout))

	return GoalReport{
		MonthlyPnL:   monthlyPnLStatus(month, g.MonthlyPnLTarget),
		DailyLoss:    dailyLossStatus(month, g.MaxDailyLossLimit),
		TradesPerDay: tradesPerDayStatus(month, g.MaxTradesPerDayLimit),
		WinRate:      winRateStatus(month, g.MinWinRatePct),
	}
}

func monthlyPnLStatus(month []journal.Trade, target float64) GoalStatus {
	if target == 0 {
		return GoalStatus{}
	}

	var net float64
	for _, t := range month {
		net += t.Net
	}

	raw := net / target * 100
	s := GoalStatus{
		Configured: true,
		Value:      net,
		Target:     target,
		RawPct:     raw,
		BarPct:     math.Min(math.Max(raw, 0), 100),
	}
	switch {
	case raw >= pnlAchievedPct:
		s.Status = StatusAchieved
	case raw >= pnlOnTrackPct:
		s.Status = StatusOnTrack
	case raw >= pnlWarningPct:
		s.Status = StatusWarning
	default:
		s.Status = StatusBehind
	}
	return s
}

func dailyLossStatus(month []journal.Trade, limit float64) GoalStatus {
	if limit == 0 {
		return GoalStatus{}
	}

	sums := make(map[string]float64)
	for _, t := range month {
		sums[t.Date] += t.Net
	}

	// Worst day never reads better than breakeven: an all-green month scores 0.
	worst := 0.0
	for _, v := range sums {
		if v < worst {
			worst = v
		}
	}

	s := GoalStatus{
		Configured: true,
		Value:      worst,
		Target:     limit,
		Status:     StatusWithin,
	}
	if math.Abs(worst) > limit {
		s.Status = StatusExceeded
	}
	return s
}

func tradesPerDayStatus(month []journal.Trade, limit int) GoalStatus {
	if limit == 0 {
		return GoalStatus{}
	}

	counts := make(map[string]int)
	busiest := 0
	for _, t := range month {
		counts[t.Date]++
		if counts[t.Date] > busiest {
			busiest = counts[t.Date]
		}
	}

	s := GoalStatus{
		Configured: true,
		Value:      float64(busiest),
		Target:     float64(limit),
		Status:     StatusWithin,
	}
	if busiest > limit {
		s.Status = StatusExceeded
	}
	return s
}

func winRateStatus(month []journal.Trade, target float64) GoalStatus {
	if target == 0 {
		return GoalStatus{}
	}

	wins := 0
	for _, t := range month {
		if t.Win() {
			wins++
		}
	}
	rate := 0.0
	if len(month) > 0 {
		rate = float64(wins) / float64(len(month)) * 100
	}

	s := GoalStatus{
		Configured: true,
		Value:      rate,
		Target:     target,
	}
	switch {
	case rate >= target:
		s.Status = StatusWithin
	case rate >= target*winRateCloseFraction:
		s.Status = StatusClose
	default:
		s.Status = StatusBehind
	}
	return s
}
