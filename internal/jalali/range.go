package jalali

import "time"

// maxMonthWalk bounds the day-by-day month boundary search. A Jalali month is
// never longer than 31 days, so 32 steps always cross a boundary.
const maxMonthWalk = 32

// MonthRange returns the first and last Gregorian dates whose Jalali month
// equals that of t. Boundaries are found by walking one day at a time and
// asking the conversion which month the neighbour lands in, which avoids
// carrying the Jalali intercalation rules here at the cost of O(31)
// conversions per call.
func MonthRange(t time.Time) (start, end time.Time) {
	target := FromTime(t).Month

	start = t
	for i := 0; i < maxMonthWalk; i++ {
		prev := start.AddDate(0, 0, -1)
		if FromTime(prev).Month != target {
			break
		}
		start = prev
	}

	end = t
	for i := 0; i < maxMonthWalk; i++ {
		next := end.AddDate(0, 0, 1)
		if FromTime(next).Month != target {
			break
		}
		end = next
	}

	return start, end
}

// WeekDays returns the seven consecutive Gregorian dates of the
// Saturday-start Persian week containing t.
func WeekDays(t time.Time) []time.Time {
	saturday := t.AddDate(0, 0, -weekdayOffset(t))

	week := make([]time.Time, 7)
	for i := range week {
		week[i] = saturday.AddDate(0, 0, i)
	}

	return week
}

// weekdayOffset maps the host weekday (Sunday = 0) to the offset from the
// most recent Saturday: Sat 0, Sun 1, ... Fri 6.
func weekdayOffset(t time.Time) int {
	return (int(t.Weekday()) + 1) % 7
}
