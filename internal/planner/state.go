// Package planner holds the pure transformations of the planner state: event
// list edits keyed by date, the month grid, and the hourly agenda. Functions
// never mutate their input; callers swap in the returned state wholesale and
// apply persistence at the boundary.
package planner

import "github.com/erfan-rahmanian/barnameh/internal/model"

// AddEvent appends event to the day at dateKey, creating the day list when
// absent. Title validation is the caller's duty; the store accepts whatever
// it is given.
func AddEvent(state model.PlannerState, dateKey string, event *model.Event) model.PlannerState {
	next := cloneState(state)
	next[dateKey] = append(next[dateKey], event)

	return next
}

// ToggleComplete flips the completion flag of the matching event. An unknown
// id is a silent no-op.
func ToggleComplete(state model.PlannerState, dateKey, eventID string) model.PlannerState {
	next := cloneState(state)

	for i, e := range next[dateKey] {
		if e.ID == eventID {
			toggled := *e
			toggled.IsCompleted = !e.IsCompleted
			next[dateKey][i] = &toggled
			break
		}
	}

	return next
}

// DeleteEvent removes the matching event from the day list. An unknown id is
// a silent no-op. Deleting the last event keeps the key with an empty list;
// reads cannot tell the difference.
func DeleteEvent(state model.PlannerState, dateKey, eventID string) model.PlannerState {
	next := cloneState(state)

	events, ok := next[dateKey]
	if !ok {
		return next
	}

	kept := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	next[dateKey] = kept

	return next
}

// EventsForDate returns the day's events in insertion order, or nil when the
// day has none. The read path never inserts into the map.
func EventsForDate(state model.PlannerState, dateKey string) []*model.Event {
	return state[dateKey]
}

// EventsForHour filters events to those assigned to the given hour,
// preserving relative order.
func EventsForHour(events []*model.Event, hour int) []*model.Event {
	var res []*model.Event
	for _, e := range events {
		if e.Hour == hour {
			res = append(res, e)
		}
	}

	return res
}

func cloneState(state model.PlannerState) model.PlannerState {
	next := make(model.PlannerState, len(state)+1)
	for key, events := range state {
		next[key] = append([]*model.Event(nil), events...)
	}

	return next
}
