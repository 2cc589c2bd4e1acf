package calendar_test

import (
	"testing"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		wantBlanks int
		wantDays   int
	}{
		// Feb 2024 starts on a Thursday and is a leap month.
		{"leap february", 2024, time.February, 4, 29},
		// Sep 2024 starts on a Sunday, no leading blanks.
		{"month starting sunday", 2024, time.September, 0, 30},
		// Mar 2025 starts on a Saturday, maximal offset.
		{"month starting saturday", 2025, time.March, 6, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := calendar.MonthGrid(tt.year, tt.month)
			require.Len(t, grid, tt.wantBlanks+tt.wantDays)

			for i := 0; i < tt.wantBlanks; i++ {
				assert.Zero(t, grid[i].Day)
				assert.Nil(t, grid[i].Date)
			}
			for d := 1; d <= tt.wantDays; d++ {
				cell := grid[tt.wantBlanks+d-1]
				require.NotNil(t, cell.Date)
				assert.Equal(t, d, cell.Day)
				assert.Equal(t, d, cell.Date.Day())
				assert.Equal(t, tt.month, cell.Date.Month())
				assert.Equal(t, 12, cell.Date.Hour())
			}

			// Day 1 lands under its weekday column.
			first := grid[tt.wantBlanks]
			assert.Equal(t, tt.wantBlanks, int(first.Date.Weekday()))
		})
	}
}
