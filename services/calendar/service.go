// Package calendar holds the active scheduling session: one year snapshot,
// exclusively owned, mutated through the event repository and persisted
// best-effort after every mutation. The core below this service is pure and
// synchronous; the mutex only serializes the HTTP surface onto the single
// logical actor the engine assumes.
package calendar

import (
	"sync"
	"time"

	"equipecal/models"
	"equipecal/services/events"
)

// Store is the persistence adapter the session saves through.
type Store interface {
	LoadYear(year int) (models.YearSnapshot, bool)
	SaveYear(year int, snap models.YearSnapshot)
	SaveCurrent(year int, snap models.YearSnapshot)
	LoadCurrent() (int, models.YearSnapshot, bool)
}

// Service manages the active year and its snapshot.
type Service struct {
	mu     sync.RWMutex
	year   int
	months models.YearSnapshot

	events    *events.Service
	store     Store
	carryOver bool
}

// New creates a session over the given store and event repository. The
// session starts empty; call Resume or SwitchYear before serving.
func New(store Store, eventsSvc *events.Service) *Service {
	return &Service{store: store, events: eventsSvc}
}

// SetCarryOverEvents enables the legacy year-switch behavior: when switching
// to a year with no stored snapshot, the previous year's event lists are
// transplanted month-by-month onto the fresh skeleton. Off by default; the
// transplant misattributes events to the wrong calendar and exists only for
// compatibility with data produced by the old client.
func (s *Service) SetCarryOverEvents(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carryOver = enabled
}

// Resume restores the most recently active session from storage, or opens
// defaultYear when no usable resume record exists.
func (s *Service) Resume(defaultYear int) {
	if year, snap, ok := s.store.LoadCurrent(); ok {
		s.mu.Lock()
		s.year, s.months = year, snap
		s.mu.Unlock()
		return
	}
	s.SwitchYear(defaultYear)
}

// Year returns the active year.
func (s *Service) Year() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.year
}

// Months returns a copy of the active snapshot with freshly derived month
// status.
func (s *Service) Months() models.YearSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.months.Clone()
	snap.RefreshStatus(s.year, time.Now())
	return snap
}

// Month returns a copy of one month of the active snapshot.
func (s *Service) Month(monthIndex int) (models.Month, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if monthIndex < 0 || monthIndex >= len(s.months) {
		return models.Month{}, false
	}
	m := s.months[monthIndex].Clone()
	m.Status = models.StatusFor(s.year, monthIndex, time.Now())
	return m, true
}

// SwitchYear makes the given year active, loading its stored snapshot when
// one exists and building a fresh skeleton otherwise. The new state is
// persisted immediately.
func (s *Service) SwitchYear(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, fromStore := s.store.LoadYear(year)
	if !fromStore && s.carryOver && len(s.months) == len(snap) {
		for i := range snap {
			snap[i].Events = make([]models.Event, len(s.months[i].Events))
			for j, ev := range s.months[i].Events {
				snap[i].Events[j] = ev.Clone()
			}
		}
	}

	s.year, s.months = year, snap
	s.saveLocked()
}

// CreateEvent adds a user event to a month and persists on success.
func (s *Service) CreateEvent(monthIndex int, draft models.Event) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.events.Create(s.months, s.year, monthIndex, draft)
	if err != nil {
		return models.Event{}, err
	}
	s.saveLocked()
	return created, nil
}

// UpdateEvent patches an event and persists on success.
func (s *Service) UpdateEvent(monthIndex int, eventID string, patch events.Patch) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.events.Update(s.months, s.year, monthIndex, eventID, patch)
	if err != nil {
		return models.Event{}, err
	}
	s.saveLocked()
	return updated, nil
}

// DeleteEvent removes an event and persists. Deleting an absent id is a
// no-op that still counts as success.
func (s *Service) DeleteEvent(monthIndex int, eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.Delete(s.months, monthIndex, eventID)
	s.saveLocked()
}

// saveLocked persists the whole active state. Failures are handled (logged
// and swallowed) inside the store; mutations never fail on storage.
func (s *Service) saveLocked() {
	s.store.SaveYear(s.year, s.months)
	s.store.SaveCurrent(s.year, s.months)
}
