// Package calendar generates the day grid used by date-picker views.
package calendar

import "time"

// Cell is one slot in a month grid. Day is zero for the leading blanks that
// pad the first week so day 1 lands under its weekday column.
type Cell struct {
	Day  int        `json:"day"`
	Date *time.Time `json:"date,omitempty"`
}

// MonthGrid returns the cells for one month, Sunday-first. Length is always
// firstWeekdayOffset + daysInMonth. The grid is recomputed fresh for every
// navigation; nothing is memoized.
func MonthGrid(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.Local)
	offset := int(first.Weekday()) // Sunday == 0
	lastDay := time.Date(year, month+1, 0, 12, 0, 0, 0, time.Local).Day()

	grid := make([]Cell, 0, offset+lastDay)
	for i := 0; i < offset; i++ {
		grid = append(grid, Cell{})
	}
	for d := 1; d <= lastDay; d++ {
		date := time.Date(year, month, d, 12, 0, 0, 0, time.Local)
		grid = append(grid, Cell{Day: d, Date: &date})
	}
	return grid
}
