package dto

import (
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalSummaryResponse is the current month's goal progress plus the
// reconstructed six-month history.
type GoalSummaryResponse struct {
	Goal          decimal.Decimal     `json:"goal"`
	MonthTotal    decimal.Decimal     `json:"monthTotal"`
	Remaining     decimal.Decimal     `json:"remaining"`
	Percent       decimal.Decimal     `json:"percent"`
	RemainingDays int                 `json:"remainingDays"`
	DailyNeeded   decimal.Decimal     `json:"dailyNeeded"`
	History       []GoalMonthResponse `json:"history"`
}

// GoalMonthResponse is one reconstructed month of goal history.
type GoalMonthResponse struct {
	Month    string          `json:"month"` // "YYYY-MM"
	Goal     decimal.Decimal `json:"goal"`
	Achieved decimal.Decimal `json:"achieved"`
	Percent  decimal.Decimal `json:"percent"`
	Success  bool            `json:"success"`
}

// ToGoalSummaryResponse assembles the wire shape from domain values.
func ToGoalSummaryResponse(p domain.GoalProgress, history []domain.GoalMonth) GoalSummaryResponse {
	months := make([]GoalMonthResponse, len(history))
	for i, m := range history {
		months[i] = GoalMonthResponse{
			Month:    m.Month,
			Goal:     m.Goal,
			Achieved: m.Achieved,
			Percent:  m.Percent,
			Success:  m.Success,
		}
	}
	return GoalSummaryResponse{
		Goal:          p.Goal,
		MonthTotal:    p.MonthTotal,
		Remaining:     p.Remaining,
		Percent:       p.Percent,
		RemainingDays: p.RemainingDays,
		DailyNeeded:   p.DailyNeeded,
		History:       months,
	}
}

// SnapshotGoalRequest asks for the live goal to be recorded against a month.
type SnapshotGoalRequest struct {
	Month string `json:"month" binding:"required,monthym"`
}

// GoalHistoryEntryResponse is a persisted goal snapshot.
type GoalHistoryEntryResponse struct {
	EntryID string          `json:"entryID"`
	Month   string          `json:"month"`
	Goal    decimal.Decimal `json:"goal"`
}

// ToGoalHistoryEntryResponse converts a domain.GoalHistoryEntry.
func ToGoalHistoryEntryResponse(e *domain.GoalHistoryEntry) GoalHistoryEntryResponse {
	return GoalHistoryEntryResponse{
		EntryID: e.EntryID,
		Month:   e.Month,
		Goal:    e.Goal,
	}
}
