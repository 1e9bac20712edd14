// Package jalali converts Gregorian dates to the Persian (Jalali) solar
// calendar and derives the Jalali month and week windows the planner views
// are built from. Conversion uses closed-form integer arithmetic, so no
// calendar library is needed.
package jalali

import "time"

// Date is a Jalali calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

var gregorianDayOffsets = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// FromTime converts the Gregorian calendar date carried by t. The time of day
// and zone are ignored; callers must keep all dates anchored to one zone, or
// day boundaries will silently shift.
func FromTime(t time.Time) Date {
	gy, gm, gd := t.Date()
	return fromGregorian(gy, int(gm), gd)
}

func fromGregorian(gy, gm, gd int) Date {
	// Leap days of the current Gregorian year only count once February has
	// passed, hence the year shift for March onwards.
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}
	days := 355666 + 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + gd + gregorianDayOffsets[gm-1]

	jy := -1595 + 33*(days/12053)
	days %= 12053

	jy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	if days < 186 {
		return Date{Year: jy, Month: 1 + days/31, Day: 1 + days%31}
	}
	return Date{Year: jy, Month: 7 + (days-186)/30, Day: 1 + (days-186)%30}
}

// Time returns midnight of the Gregorian date matching d in the given zone.
func (d Date) Time(loc *time.Location) time.Time {
	jy := d.Year + 1595
	days := -355668 + 365*jy + (jy/33)*8 + ((jy%33)+3)/4 + d.Day
	if d.Month < 7 {
		days += (d.Month - 1) * 31
	} else {
		days += (d.Month-7)*30 + 186
	}

	gy := 400 * (days / 146097)
	days %= 146097

	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1

	leap := 0
	if (gy%4 == 0 && gy%100 != 0) || gy%400 == 0 {
		leap = 1
	}
	monthLengths := [...]int{31, 28 + leap, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	gm := 0
	for gm < 12 && gd > monthLengths[gm] {
		gd -= monthLengths[gm]
		gm++
	}

	return time.Date(gy, time.Month(gm+1), gd, 0, 0, 0, 0, loc)
}
