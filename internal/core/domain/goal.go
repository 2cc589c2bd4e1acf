package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// goalProgressCap bounds the displayed progress percentage. Progress may
// exceed 100 when a month outperforms its goal, but is capped at 200 so the
// figure stays displayable.
var goalProgressCap = decimal.NewFromInt(200)

// GoalProgress is the derived state of the current month's goal.
type GoalProgress struct {
	Goal          decimal.Decimal `json:"goal"`
	MonthTotal    decimal.Decimal `json:"monthTotal"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percent       decimal.Decimal `json:"percent"` // Capped at 200
	RemainingDays int             `json:"remainingDays"`
	DailyNeeded   decimal.Decimal `json:"dailyNeeded"`
}

// GoalMonth is one month of the reconstructed goal history: the achieved
// revenue re-derived from freight records merged with the optionally
// persisted goal snapshot for that month.
type GoalMonth struct {
	Month    string          `json:"month"` // "YYYY-MM"
	Goal     decimal.Decimal `json:"goal"`  // Zero when no snapshot was persisted
	Achieved decimal.Decimal `json:"achieved"`
	Percent  decimal.Decimal `json:"percent"`
	Success  bool            `json:"success"`
}

// MonthlyTotal sums TotalValue over every freight whose noon-anchored
// service date falls in the given calendar month.
func MonthlyTotal(freights []Freight, year int, month time.Month) decimal.Decimal {
	total := decimal.Zero
	for _, f := range freights {
		if f.InMonth(year, month) {
			total = total.Add(f.TotalValue)
		}
	}
	return total
}

// ProgressAgainstGoal computes how far monthTotal has come toward goal.
// A non-positive goal yields zero progress and zero remaining.
func ProgressAgainstGoal(goal, monthTotal decimal.Decimal) (remaining, percent decimal.Decimal) {
	remaining = goal.Sub(monthTotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if !goal.IsPositive() {
		return decimal.Zero, decimal.Zero
	}
	percent = monthTotal.Div(goal).Mul(decimal.NewFromInt(100))
	if percent.GreaterThan(goalProgressCap) {
		percent = goalProgressCap
	}
	return remaining, percent
}

// RemainingGoalDays returns how many days are left to reach the goal. With
// an explicit deadline the count runs to the deadline's end of day and may
// reach zero; without one it runs to the end of the current month and is
// never less than one.
func RemainingGoalDays(now time.Time, deadline *time.Time) int {
	if deadline != nil {
		endOfDay := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 23, 59, 59, 0, now.Location())
		diff := endOfDay.Sub(now)
		if diff <= 0 {
			return 0
		}
		days := int(diff.Hours() / 24)
		if diff.Hours() > float64(days)*24 {
			days++
		}
		return days
	}
	lastDay := daysInMonth(now.Year(), now.Month())
	days := lastDay - now.Day() + 1
	if days < 1 {
		days = 1
	}
	return days
}

// BuildGoalProgress assembles the full current-month goal view.
func BuildGoalProgress(freights []Freight, goal decimal.Decimal, deadline *time.Time, now time.Time) GoalProgress {
	monthTotal := MonthlyTotal(freights, now.Year(), now.Month())
	remaining, percent := ProgressAgainstGoal(goal, monthTotal)
	days := RemainingGoalDays(now, deadline)
	dailyNeeded := decimal.Zero
	if days > 0 {
		dailyNeeded = remaining.Div(decimal.NewFromInt(int64(days)))
	}
	return GoalProgress{
		Goal:          goal,
		MonthTotal:    monthTotal,
		Remaining:     remaining,
		Percent:       percent,
		RemainingDays: days,
		DailyNeeded:   dailyNeeded,
	}
}

// BuildGoalHistory reconstructs the previous six calendar months (excluding
// the current one), merging achievement re-derived from freight records with
// persisted goal snapshots. A month is included iff it had revenue or a
// snapshot exists for it. The live monthly goal is never consulted here.
// Months are ordered most recent first.
func BuildGoalHistory(freights []Freight, snapshots []GoalHistoryEntry, now time.Time) []GoalMonth {
	byMonth := make(map[string]decimal.Decimal, len(snapshots))
	for _, s := range snapshots {
		byMonth[s.Month] = s.Goal
	}

	history := make([]GoalMonth, 0, 6)
	for i := 1; i <= 6; i++ {
		ref := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := ref.Format("2006-01")
		achieved := MonthlyTotal(freights, ref.Year(), ref.Month())
		goal, hasSnapshot := byMonth[key]
		if !achieved.IsPositive() && !hasSnapshot {
			continue
		}
		percent := decimal.Zero
		if goal.IsPositive() {
			percent = achieved.Div(goal).Mul(decimal.NewFromInt(100))
		}
		history = append(history, GoalMonth{
			Month:    key,
			Goal:     goal,
			Achieved: achieved,
			Percent:  percent,
			Success:  goal.IsPositive() && achieved.GreaterThanOrEqual(goal),
		})
	}
	return history
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}
