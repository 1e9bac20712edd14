package api

import (
	planner_service "github.com/erfan-rahmanian/barnameh/internal/business/planner"
	"github.com/erfan-rahmanian/barnameh/internal/model"
)

type monthCellResponse struct {
	Date           string `json:"date"`
	Day            string `json:"day"`
	IsCurrentMonth bool   `json:"is_current_month"`
	IsToday        bool   `json:"is_today"`
	HasEvents      bool   `json:"has_events"`
	HasImportant   bool   `json:"has_important"`
}

type monthViewResponse struct {
	Month    string              `json:"month"`
	Year     string              `json:"year"`
	Weekdays []string            `json:"weekdays"`
	Days     []monthCellResponse `json:"days"`
}

type weekDayResponse struct {
	Date      string   `json:"date"`
	DayName   string   `json:"day_name"`
	Day       string   `json:"day"`
	IsToday   bool     `json:"is_today"`
	HasEvents bool     `json:"has_events"`
	Markers   []string `json:"markers"`
}

type weekViewResponse struct {
	Days []weekDayResponse `json:"days"`
}

type hourSlotResponse struct {
	Hour   int            `json:"hour"`
	Label  string         `json:"label"`
	Events []*model.Event `json:"events"`
}

type agendaResponse struct {
	Date  string             `json:"date"`
	Title string             `json:"title"`
	Hours []hourSlotResponse `json:"hours"`
}

func mapMonthView(view *planner_service.MonthView) *monthViewResponse {
	resp := &monthViewResponse{
		Month:    view.Month,
		Year:     view.Year,
		Weekdays: view.Weekdays,
		Days:     make([]monthCellResponse, 0, len(view.Days)),
	}

	for _, cell := range view.Days {
		resp.Days = append(resp.Days, monthCellResponse{
			Date:           cell.DateKey,
			Day:            cell.Day,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        cell.IsToday,
			HasEvents:      cell.HasEvents,
			HasImportant:   cell.HasImportant,
		})
	}

	return resp
}

func mapWeekView(view *planner_service.WeekView) *weekViewResponse {
	resp := &weekViewResponse{Days: make([]weekDayResponse, 0, len(view.Days))}

	for _, day := range view.Days {
		markers := make([]string, 0, len(day.Markers))
		for _, m := range day.Markers {
			markers = append(markers, string(m))
		}

		resp.Days = append(resp.Days, weekDayResponse{
			Date:      day.DateKey,
			DayName:   day.DayName,
			Day:       day.Day,
			IsToday:   day.IsToday,
			HasEvents: day.HasEvents,
			Markers:   markers,
		})
	}

	return resp
}

func mapAgenda(agenda *planner_service.Agenda) *agendaResponse {
	resp := &agendaResponse{
		Date:  agenda.DateKey,
		Title: agenda.Title,
		Hours: make([]hourSlotResponse, 0, len(agenda.Hours)),
	}

	for _, slot := range agenda.Hours {
		events := slot.Events
		if events == nil {
			events = []*model.Event{}
		}

		resp.Hours = append(resp.Hours, hourSlotResponse{
			Hour:   slot.Hour,
			Label:  slot.Label,
			Events: events,
		})
	}

	return resp
}
