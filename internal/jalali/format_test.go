package jalali

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParts(t *testing.T) {
	parts := Parts(time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "1403", parts.Year)
	assert.Equal(t, "01", parts.Month)
	assert.Equal(t, "05", parts.Day)
}

func TestDayString(t *testing.T) {
	assert.Equal(t, "1", DayString(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "11", DayString(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "فروردین", MonthName(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "اسفند", MonthName(time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC)))
}

func TestWeekdayName(t *testing.T) {
	// 2024-03-16 is a Saturday.
	saturday := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	want := []string{"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنج‌شنبه", "جمعه"}
	for i, name := range want {
		assert.Equal(t, name, WeekdayName(saturday.AddDate(0, 0, i)))
	}
}

func TestToPersianDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1403", "۱۴۰۳"},
		{"9:00", "۹:۰۰"},
		{"no digits", "no digits"},
		{"", ""},
		{"۵", "۵"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ToPersianDigits(tc.in))
	}
}

func TestDateKey(t *testing.T) {
	day := time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DateKey(day))

	parsed, err := ParseDateKey("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", DateKey(parsed))

	_, err = ParseDateKey("05/03/2024")
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, nextDay))
}
