package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateParts are the display components of a Jalali date, as ASCII decimal
// numeral strings: year unpadded, month and day zero-padded to two digits.
type DateParts struct {
	Year  string
	Month string
	Day   string
}

var monthNames = [...]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// weekdayNames is indexed by offset from Saturday, the first day of the
// Persian week.
var weekdayNames = [...]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه",
}

var weekdayShortNames = [...]string{"ش", "ی", "د", "س", "چ", "پ", "ج"}

var persianDigits = [...]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

func Parts(t time.Time) DateParts {
	d := FromTime(t)
	return DateParts{
		Year:  strconv.Itoa(d.Year),
		Month: fmt.Sprintf("%02d", d.Month),
		Day:   fmt.Sprintf("%02d", d.Day),
	}
}

func MonthName(t time.Time) string {
	return monthNames[FromTime(t).Month-1]
}

func YearString(t time.Time) string {
	return strconv.Itoa(FromTime(t).Year)
}

// DayString is the unpadded day number shown in calendar cells and titles.
func DayString(t time.Time) string {
	return strconv.Itoa(FromTime(t).Day)
}

// WeekdayName returns the Persian weekday name of t.
func WeekdayName(t time.Time) string {
	return weekdayNames[weekdayOffset(t)]
}

// WeekdayShortNames returns the single-letter weekday header of a
// Saturday-start calendar grid.
func WeekdayShortNames() []string {
	return weekdayShortNames[:]
}

// ToPersianDigits replaces every ASCII decimal digit with its Persian numeral
// glyph. All other characters pass through unchanged.
func ToPersianDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(persianDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

const dateKeyFormat = "2006-01-02"

// DateKey is the canonical Gregorian date string used to index stored events.
// Two times denote the same day iff their keys are equal.
func DateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyFormat, key, time.Local)
}

func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
