package events

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"equipecal/models"
	"equipecal/utils/datemath"
)

var (
	// ErrValidation marks a rejected create/update; the snapshot is untouched.
	ErrValidation = errors.New("invalid event")
	// ErrEventNotFound marks an update addressing an unknown event id.
	ErrEventNotFound = errors.New("event not found")
)

// DefaultTime fills the time field when a draft omits it.
const DefaultTime = "09:00"

// Service performs event CRUD over a year snapshot's month lists. It holds no
// snapshot itself; the owning session passes its snapshot in. Events never
// move between months through Update — that is a delete plus a create.
type Service struct {
	// NewID allocates ids for user-created events. Defaults to uuid; tests
	// may pin it for reproducible ids.
	NewID func() string
}

// New creates an event service with uuid id allocation.
func New() *Service {
	return &Service{NewID: uuid.NewString}
}

// Create validates the draft, assigns a fresh id and the default time if none
// was given, and appends it to the month's event list.
func (s *Service) Create(snap models.YearSnapshot, year, monthIndex int, draft models.Event) (models.Event, error) {
	if err := checkMonthIndex(snap, monthIndex); err != nil {
		return models.Event{}, err
	}
	if draft.Name == "" {
		return models.Event{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if draft.Day == 0 {
		return models.Event{}, fmt.Errorf("%w: day is required", ErrValidation)
	}
	if err := checkDay(draft.Day, monthIndex, year); err != nil {
		return models.Event{}, err
	}

	event := draft.Clone()
	event.ID = s.NewID()
	if event.Time == "" {
		event.Time = DefaultTime
	}
	if event.Priority == "" {
		event.Priority = models.PriorityNormal
	}

	snap[monthIndex].Events = append(snap[monthIndex].Events, event)
	return event.Clone(), nil
}

// Update merges the patch over the existing event, replacing each patched
// field wholesale (sets are swapped, not merged). A failed update leaves the
// event untouched.
func (s *Service) Update(snap models.YearSnapshot, year, monthIndex int, eventID string, patch Patch) (models.Event, error) {
	if err := checkMonthIndex(snap, monthIndex); err != nil {
		return models.Event{}, err
	}

	month := &snap[monthIndex]
	for i := range month.Events {
		if month.Events[i].ID != eventID {
			continue
		}

		merged := month.Events[i].Clone()
		patch.applyTo(&merged)
		if err := checkDay(merged.Day, monthIndex, year); err != nil {
			return models.Event{}, err
		}

		month.Events[i] = merged
		return merged.Clone(), nil
	}

	return models.Event{}, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
}

// Delete removes the event from the month. Deleting an absent id is a no-op.
func (s *Service) Delete(snap models.YearSnapshot, monthIndex int, eventID string) {
	if monthIndex < 0 || monthIndex >= len(snap) {
		return
	}
	month := &snap[monthIndex]
	for i := range month.Events {
		if month.Events[i].ID == eventID {
			month.Events = append(month.Events[:i], month.Events[i+1:]...)
			return
		}
	}
}

// List returns the month's events in insertion order, as copies.
func (s *Service) List(snap models.YearSnapshot, monthIndex int) []models.Event {
	if monthIndex < 0 || monthIndex >= len(snap) {
		return nil
	}
	out := make([]models.Event, len(snap[monthIndex].Events))
	for i, ev := range snap[monthIndex].Events {
		out[i] = ev.Clone()
	}
	return out
}

func checkMonthIndex(snap models.YearSnapshot, monthIndex int) error {
	if monthIndex < 0 || monthIndex >= len(snap) {
		return fmt.Errorf("%w: month index %d out of range", ErrValidation, monthIndex)
	}
	return nil
}

func checkDay(day, monthIndex, year int) error {
	max := datemath.DaysInMonth(monthIndex+1, year)
	if day < 1 || day > max {
		return fmt.Errorf("%w: day %d out of range for month %d of %d", ErrValidation, day, monthIndex+1, year)
	}
	return nil
}
