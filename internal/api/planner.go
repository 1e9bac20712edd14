package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/erfan-rahmanian/barnameh/internal/jalali"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	"github.com/erfan-rahmanian/barnameh/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// dateQueryParam resolves the optional ?date= parameter, defaulting to the
// current moment when absent.
func (a *Api) dateQueryParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now(), nil
	}

	return jalali.ParseDateKey(raw)
}

func (a *Api) getMonthViewHandler(w http.ResponseWriter, r *http.Request) {
	date, err := a.dateQueryParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	view := a.planner.MonthView(date, time.Now())

	if err := a.writeJSON(w, http.StatusOK, mapMonthView(view), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getWeekViewHandler(w http.ResponseWriter, r *http.Request) {
	date, err := a.dateQueryParam(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	view := a.planner.WeekView(date, time.Now())

	if err := a.writeJSON(w, http.StatusOK, mapWeekView(view), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getDayAgendaHandler(w http.ResponseWriter, r *http.Request) {
	date, err := jalali.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	agenda := a.planner.DayAgenda(date)

	if err := a.writeJSON(w, http.StatusOK, mapAgenda(agenda), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	date, err := jalali.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	input := &model.EventCreate{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	input.Title = strings.TrimSpace(input.Title)

	v := validator.New()
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(input.Type.Valid(), "type", "must be one of normal, exam, meeting, deadline")
	v.Check(input.Hour >= 0 && input.Hour <= 23, "hour", "must be between 0 and 23")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := a.planner.AddEvent(r.Context(), date, input)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	a.eventMutations.WithLabelValues("create").Inc()

	if err := a.writeJSON(w, http.StatusCreated, event, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) toggleEventHandler(w http.ResponseWriter, r *http.Request) {
	date, err := jalali.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.planner.ToggleComplete(r.Context(), date, chi.URLParam(r, "eventID")); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	a.eventMutations.WithLabelValues("toggle").Inc()

	w.WriteHeader(http.StatusOK)
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	date, err := jalali.ParseDateKey(chi.URLParam(r, "date"))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.planner.DeleteEvent(r.Context(), date, chi.URLParam(r, "eventID")); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	a.eventMutations.WithLabelValues("delete").Inc()

	w.WriteHeader(http.StatusOK)
}
