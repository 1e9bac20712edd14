package planner

import "time"

// GridSize is the fixed cell count of the month view: 6 rows of 7 days,
// enough for any month length and start weekday.
const GridSize = 42

type GridCell struct {
	Date           time.Time
	IsCurrentMonth bool
}

// MonthGrid lays out the Jalali month spanning start..end as a chronological
// 42-cell grid, padded with adjacent-month days so the first cell is always a
// Saturday.
func MonthGrid(start, end time.Time) []GridCell {
	cells := make([]GridCell, 0, GridSize)

	padding := (int(start.Weekday()) + 1) % 7
	for i := padding; i > 0; i-- {
		cells = append(cells, GridCell{Date: start.AddDate(0, 0, -i)})
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, GridCell{Date: d, IsCurrentMonth: true})
	}

	for i := 1; len(cells) < GridSize; i++ {
		cells = append(cells, GridCell{Date: end.AddDate(0, 0, i)})
	}

	return cells
}
