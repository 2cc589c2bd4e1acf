package domain_test

import (
	"testing"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func freightOn(date string, total string) domain.Freight {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return domain.Freight{
		FreightDate: domain.NoonAnchor(t),
		TotalValue:  dec(total),
	}
}

func TestNoonAnchorKeepsMonthEndStable(t *testing.T) {
	// A last-of-month date must not drift into the next month regardless of
	// timezone normalization around midnight.
	f := freightOn("2024-03-31", "100")
	assert.True(t, f.InMonth(2024, time.March))
	assert.False(t, f.InMonth(2024, time.April))
	assert.Equal(t, 12, f.FreightDate.Hour())
}

func TestMonthlyTotal(t *testing.T) {
	freights := []domain.Freight{
		freightOn("2024-03-05", "100"),
		freightOn("2024-03-31", "50.50"),
		freightOn("2024-04-01", "999"),
		freightOn("2024-02-29", "10"),
	}

	total := domain.MonthlyTotal(freights, 2024, time.March)
	assert.True(t, total.Equal(dec("150.50")), "got %s", total)
}

func TestProgressAgainstGoal(t *testing.T) {
	t.Run("partial progress", func(t *testing.T) {
		remaining, percent := domain.ProgressAgainstGoal(dec("1000"), dec("250"))
		assert.True(t, remaining.Equal(dec("750")))
		assert.True(t, percent.Equal(dec("25")))
	})

	t.Run("overachievement caps at 200", func(t *testing.T) {
		remaining, percent := domain.ProgressAgainstGoal(dec("1000"), dec("5000"))
		assert.True(t, remaining.IsZero())
		assert.True(t, percent.Equal(dec("200")), "got %s", percent)
	})

	t.Run("zero goal yields zero progress", func(t *testing.T) {
		remaining, percent := domain.ProgressAgainstGoal(decimal.Zero, dec("5000"))
		assert.True(t, remaining.IsZero())
		assert.True(t, percent.IsZero())
	})
}

func TestRemainingGoalDays(t *testing.T) {
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.Local)

	t.Run("no deadline runs to month end", func(t *testing.T) {
		assert.Equal(t, 12, domain.RemainingGoalDays(now, nil))
	})

	t.Run("no deadline on last day is one", func(t *testing.T) {
		lastDay := time.Date(2024, time.March, 31, 23, 0, 0, 0, time.Local)
		assert.Equal(t, 1, domain.RemainingGoalDays(lastDay, nil))
	})

	t.Run("explicit deadline counts to its end of day", func(t *testing.T) {
		deadline := time.Date(2024, time.March, 25, 12, 0, 0, 0, time.Local)
		assert.Equal(t, 6, domain.RemainingGoalDays(now, &deadline))
	})

	t.Run("past deadline is zero", func(t *testing.T) {
		deadline := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
		assert.Equal(t, 0, domain.RemainingGoalDays(now, &deadline))
	})
}

func TestBuildGoalHistory(t *testing.T) {
	now := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.Local)
	freights := []domain.Freight{
		freightOn("2024-06-10", "800"),
		freightOn("2024-05-31", "1200"),
		freightOn("2024-07-01", "500"), // Current month, excluded from history
		freightOn("2023-12-15", "300"), // Older than six months, excluded
	}
	snapshots := []domain.GoalHistoryEntry{
		{Month: "2024-06", Goal: dec("1000")},
		{Month: "2024-03", Goal: dec("900")}, // Snapshot with no revenue
	}

	history := domain.BuildGoalHistory(freights, snapshots, now)
	require.Len(t, history, 3)

	// Newest first.
	assert.Equal(t, "2024-06", history[0].Month)
	assert.Equal(t, "2024-05", history[1].Month)
	assert.Equal(t, "2024-03", history[2].Month)

	// June: snapshot goal, underachieved.
	assert.True(t, history[0].Goal.Equal(dec("1000")))
	assert.True(t, history[0].Achieved.Equal(dec("800")))
	assert.True(t, history[0].Percent.Equal(dec("80")))
	assert.False(t, history[0].Success)

	// May: revenue but no snapshot, so no goal and no success flag.
	assert.True(t, history[1].Goal.IsZero())
	assert.True(t, history[1].Achieved.Equal(dec("1200")))
	assert.True(t, history[1].Percent.IsZero())
	assert.False(t, history[1].Success)

	// March: snapshot only, zero achievement.
	assert.True(t, history[2].Goal.Equal(dec("900")))
	assert.True(t, history[2].Achieved.IsZero())
	assert.False(t, history[2].Success)
}

func TestBuildGoalHistoryIsRederivable(t *testing.T) {
	// Deleting and re-running the reconstruction must give identical results
	// since achievement always comes from freight records.
	now := time.Date(2024, time.July, 15, 10, 0, 0, 0, time.Local)
	freights := []domain.Freight{freightOn("2024-06-10", "800")}
	snapshots := []domain.GoalHistoryEntry{{Month: "2024-06", Goal: dec("1000")}}

	first := domain.BuildGoalHistory(freights, snapshots, now)
	second := domain.BuildGoalHistory(freights, snapshots, now)
	assert.Equal(t, first, second)
}

func TestBuildGoalProgress(t *testing.T) {
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.Local)
	freights := []domain.Freight{
		freightOn("2024-03-05", "400"),
		freightOn("2024-02-29", "999"),
	}

	progress := domain.BuildGoalProgress(freights, dec("1000"), nil, now)
	assert.True(t, progress.Goal.Equal(dec("1000")))
	assert.True(t, progress.MonthTotal.Equal(dec("400")))
	assert.True(t, progress.Remaining.Equal(dec("600")))
	assert.True(t, progress.Percent.Equal(dec("40")))
	assert.Equal(t, 12, progress.RemainingDays)
	assert.True(t, progress.DailyNeeded.Equal(dec("50")), "got %s", progress.DailyNeeded)
}
