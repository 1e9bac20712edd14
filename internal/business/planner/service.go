// Package planner owns the single in-process planner state. Mutations go
// through the pure transformations of internal/planner and are persisted
// write-through: the new state is swapped in only after a successful save.
package planner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/erfan-rahmanian/barnameh/internal/jalali"
	"github.com/erfan-rahmanian/barnameh/internal/model"
	planner_state "github.com/erfan-rahmanian/barnameh/internal/planner"
)

type Service struct {
	store StateRepository
	ids   idGenerator

	mu    sync.RWMutex
	state model.PlannerState
}

// StateRepository persists the whole state as one blob.
type StateRepository interface {
	Load(ctx context.Context) (model.PlannerState, error)
	Save(ctx context.Context, state model.PlannerState) error
}

type idGenerator interface {
	NewID() string
}

// NewService loads the persisted state once. Repositories are fail-soft on
// missing or unreadable blobs, so only infrastructure failures surface here.
func NewService(ctx context.Context, store StateRepository, ids idGenerator) (*Service, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	return &Service{
		store: store,
		ids:   ids,
		state: state,
	}, nil
}

// AddEvent creates an event under the day of date. The caller validates the
// draft; the service only assigns identity and persists.
func (s *Service) AddEvent(ctx context.Context, date time.Time, info *model.EventCreate) (*model.Event, error) {
	event := &model.Event{
		ID:          s.ids.NewID(),
		EventCreate: *info,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := planner_state.AddEvent(s.state, jalali.DateKey(date), event)
	if err := s.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("store.Save: %w", err)
	}
	s.state = next

	return event, nil
}

// ToggleComplete flips the completion flag of the event under the day of
// date. An unknown id is a silent no-op.
func (s *Service) ToggleComplete(ctx context.Context, date time.Time, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := planner_state.ToggleComplete(s.state, jalali.DateKey(date), eventID)
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	s.state = next

	return nil
}

// DeleteEvent removes the event under the day of date. An unknown id is a
// silent no-op.
func (s *Service) DeleteEvent(ctx context.Context, date time.Time, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := planner_state.DeleteEvent(s.state, jalali.DateKey(date), eventID)
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	s.state = next

	return nil
}

// EventsForDate returns the day's events in insertion order.
func (s *Service) EventsForDate(date time.Time) []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return planner_state.EventsForDate(s.state, jalali.DateKey(date))
}
