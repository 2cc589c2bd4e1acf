package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the database representation of a user's configuration row.
type Settings struct {
	SettingsID  string `db:"settings_id"`
	OwnerUserID string `db:"owner_user_id"`

	DefaultCompanyPercent decimal.Decimal `db:"default_company_percent"`
	DefaultDriverPercent  decimal.Decimal `db:"default_driver_percent"`
	DefaultReservePercent decimal.Decimal `db:"default_reserve_percent"`

	MonthlyGoal  decimal.Decimal `db:"monthly_goal"`
	GoalDeadline *time.Time      `db:"goal_deadline"` // Nullable

	IssuerName  string `db:"issuer_name"`
	IssuerDoc   string `db:"issuer_doc"`
	IssuerPhone string `db:"issuer_phone"`

	AuditFields
}

// GoalHistoryEntry is the database representation of a monthly goal snapshot.
type GoalHistoryEntry struct {
	EntryID     string          `db:"entry_id"`
	OwnerUserID string          `db:"owner_user_id"`
	Month       string          `db:"month"` // "YYYY-MM"
	Goal        decimal.Decimal `db:"goal"`
	AuditFields
}
