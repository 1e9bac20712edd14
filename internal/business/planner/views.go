package planner

import (
	"fmt"
	"time"

	"github.com/erfan-rahmanian/barnameh/internal/jalali"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	planner_state "github.com/erfan-rahmanian/barnameh/internal/planner"
)

// weekMarkerLimit caps the per-day markers of the week strip, matching the
// three dots the strip has room for.
const weekMarkerLimit = 3

type MonthView struct {
	Month    string
	Year     string
	Weekdays []string
	Days     []MonthCell
}

type MonthCell struct {
	DateKey        string
	Day            string
	IsCurrentMonth bool
	IsToday        bool
	HasEvents      bool
	HasImportant   bool
}

type WeekView struct {
	Days []WeekDay
}

type WeekDay struct {
	DateKey   string
	DayName   string
	Day       string
	IsToday   bool
	HasEvents bool
	Markers   []model.EventType
}

type Agenda struct {
	DateKey string
	Title   string
	Hours   []HourSlot
}

type HourSlot struct {
	Hour   int
	Label  string
	Events []*model.Event
}

// MonthView renders the 42-cell grid of the Jalali month containing date.
// now only decides the today highlight.
func (s *Service) MonthView(date, now time.Time) *MonthView {
	start, end := jalali.MonthRange(date)

	s.mu.RLock()
	defer s.mu.RUnlock()

	view := &MonthView{
		Month:    jalali.MonthName(date),
		Year:     jalali.ToPersianDigits(jalali.YearString(date)),
		Weekdays: jalali.WeekdayShortNames(),
	}

	for _, cell := range planner_state.MonthGrid(start, end) {
		key := jalali.DateKey(cell.Date)
		events := planner_state.EventsForDate(s.state, key)

		hasImportant := false
		for _, e := range events {
			if e.Type != model.EventTypeNormal {
				hasImportant = true
				break
			}
		}

		view.Days = append(view.Days, MonthCell{
			DateKey:        key,
			Day:            jalali.ToPersianDigits(jalali.DayString(cell.Date)),
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        jalali.SameDay(cell.Date, now),
			HasEvents:      len(events) > 0,
			HasImportant:   hasImportant,
		})
	}

	return view
}

// WeekView renders the Saturday-start week strip containing date.
func (s *Service) WeekView(date, now time.Time) *WeekView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := &WeekView{}

	for _, day := range jalali.WeekDays(date) {
		key := jalali.DateKey(day)
		events := planner_state.EventsForDate(s.state, key)

		var markers []model.EventType
		for _, e := range events {
			if e.Type == model.EventTypeNormal {
				continue
			}
			markers = append(markers, e.Type)
			if len(markers) == weekMarkerLimit {
				break
			}
		}

		view.Days = append(view.Days, WeekDay{
			DateKey:   key,
			DayName:   jalali.WeekdayName(day),
			Day:       jalali.ToPersianDigits(jalali.DayString(day)),
			IsToday:   jalali.SameDay(day, now),
			HasEvents: len(events) > 0,
			Markers:   markers,
		})
	}

	return view
}

// DayAgenda partitions the day's events into the 24 hourly slots.
func (s *Service) DayAgenda(date time.Time) *Agenda {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := jalali.DateKey(date)
	events := planner_state.EventsForDate(s.state, key)

	agenda := &Agenda{
		DateKey: key,
		Title: fmt.Sprintf("%s %s %s %s",
			jalali.WeekdayName(date),
			jalali.ToPersianDigits(jalali.DayString(date)),
			jalali.MonthName(date),
			jalali.ToPersianDigits(jalali.YearString(date)),
		),
	}

	for hour, bucket := range planner_state.HourBuckets(events) {
		agenda.Hours = append(agenda.Hours, HourSlot{
			Hour:   hour,
			Label:  jalali.ToPersianDigits(fmt.Sprintf("%d:00", hour)),
			Events: bucket,
		})
	}

	return agenda
}
