package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings holds a user's bookkeeping configuration: default split
// percentages for new freights, the live monthly revenue goal and its
// optional custom deadline, and the issuer identity printed on statements.
// Settings are loaded per request and passed into computations explicitly;
// there is no process-wide settings singleton.
type Settings struct {
	SettingsID  string `json:"settingsID"` // Primary key (UUID)
	OwnerUserID string `json:"ownerUserID"`

	DefaultCompanyPercent decimal.Decimal `json:"defaultCompanyPercent"`
	DefaultDriverPercent  decimal.Decimal `json:"defaultDriverPercent"`
	DefaultReservePercent decimal.Decimal `json:"defaultReservePercent"`

	MonthlyGoal  decimal.Decimal `json:"monthlyGoal"`
	GoalDeadline *time.Time      `json:"goalDeadline,omitempty"` // Optional, distinct from month-end

	IssuerName  string `json:"issuerName"`
	IssuerDoc   string `json:"issuerDoc"`
	IssuerPhone string `json:"issuerPhone"`

	AuditFields
}

// GoalHistoryEntry is a snapshot of the monthly goal taken when a month
// closes. Past months always read their goal from a snapshot, never from the
// live MonthlyGoal setting, since that may have changed since.
type GoalHistoryEntry struct {
	EntryID     string          `json:"entryID"` // Primary key (UUID)
	OwnerUserID string          `json:"ownerUserID"`
	Month       string          `json:"month"` // "YYYY-MM"
	Goal        decimal.Decimal `json:"goal"`
	AuditFields
}
