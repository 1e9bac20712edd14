package model

import "encoding/json"

type EventCreate struct {
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Hour        int       `json:"hour"`
	Description string    `json:"description,omitempty"`
}

type Event struct {
	ID string `json:"id"`
	EventCreate
	IsCompleted bool `json:"isCompleted"`
}

type EventType string

const (
	EventTypeNormal   EventType = "normal"
	EventTypeExam     EventType = "exam"
	EventTypeMeeting  EventType = "meeting"
	EventTypeDeadline EventType = "deadline"
)

var eventTypeLabels = map[EventType]string{
	EventTypeNormal:   "معمولی",
	EventTypeExam:     "امتحان",
	EventTypeMeeting:  "جلسه",
	EventTypeDeadline: "تحویل پروژه",
}

func (t EventType) Valid() bool {
	_, ok := eventTypeLabels[t]
	return ok
}

// Label returns the Persian form label for the event type.
func (t EventType) Label() string {
	return eventTypeLabels[t]
}

// PlannerState maps a Gregorian date key (YYYY-MM-DD) to the events of that
// day in insertion order.
type PlannerState map[string][]*Event

// DecodePlannerState parses a persisted state blob. A corrupted blob must not
// prevent startup: any parse failure yields an empty state.
func DecodePlannerState(data []byte) PlannerState {
	var state PlannerState
	if err := json.Unmarshal(data, &state); err != nil || state == nil {
		return PlannerState{}
	}

	return state
}

func EncodePlannerState(state PlannerState) ([]byte, error) {
	return json.Marshal(state)
}
