package calendar

import (
	"errors"
	"testing"

	"equipecal/models"
	"equipecal/services/builder"
	"equipecal/services/events"
	"equipecal/services/rules"
)

// mockStore records saves and serves canned snapshots.
type mockStore struct {
	builder   *builder.Service
	stored    map[int]models.YearSnapshot
	current   models.YearSnapshot
	currentYr int
	hasCur    bool
	saves     int
}

func newMockStore() *mockStore {
	return &mockStore{
		builder: builder.New(rules.Default()),
		stored:  map[int]models.YearSnapshot{},
	}
}

func (m *mockStore) LoadYear(year int) (models.YearSnapshot, bool) {
	if snap, ok := m.stored[year]; ok {
		return snap.Clone(), true
	}
	return m.builder.Build(year), false
}

func (m *mockStore) SaveYear(year int, snap models.YearSnapshot) {
	m.saves++
	m.stored[year] = snap.Clone()
}

func (m *mockStore) SaveCurrent(year int, snap models.YearSnapshot) {
	m.currentYr, m.current, m.hasCur = year, snap.Clone(), true
}

func (m *mockStore) LoadCurrent() (int, models.YearSnapshot, bool) {
	if !m.hasCur {
		return 0, nil, false
	}
	return m.currentYr, m.current.Clone(), true
}

func newTestSession(t *testing.T) (*Service, *mockStore) {
	t.Helper()
	st := newMockStore()
	svc := New(st, events.New())
	svc.SwitchYear(2025)
	return svc, st
}

func TestCreateEvent_VisibleAndSaved(t *testing.T) {
	svc, st := newTestSession(t)
	savesBefore := st.saves

	created, err := svc.CreateEvent(4, models.Event{Name: "Live de lançamento", Day: 20, Type: models.EventOnline})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if st.saves != savesBefore+1 {
		t.Errorf("expected one save after mutation, got %d", st.saves-savesBefore)
	}

	month, ok := svc.Month(4)
	if !ok {
		t.Fatal("month 4 missing")
	}
	found := false
	for _, ev := range month.Events {
		if ev.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("created event not visible through Month")
	}
}

func TestCreateEvent_FailureDoesNotSave(t *testing.T) {
	svc, st := newTestSession(t)
	savesBefore := st.saves

	_, err := svc.CreateEvent(1, models.Event{Day: 5}) // no name
	if !errors.Is(err, events.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if st.saves != savesBefore {
		t.Error("failed mutation must not persist")
	}
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	svc, st := newTestSession(t)
	created, _ := svc.CreateEvent(0, models.Event{Name: "Aprovação", Day: 9, Type: models.EventApproval})

	prio := models.PriorityCritical
	updated, err := svc.UpdateEvent(0, created.ID, events.Patch{Priority: &prio})
	if err != nil {
		t.Fatalf("UpdateEvent: %v", err)
	}
	if updated.Priority != models.PriorityCritical {
		t.Errorf("priority not updated: %q", updated.Priority)
	}

	if _, err := svc.UpdateEvent(0, "missing", events.Patch{}); !errors.Is(err, events.ErrEventNotFound) {
		t.Errorf("got %v, want ErrEventNotFound", err)
	}

	savesBefore := st.saves
	svc.DeleteEvent(0, created.ID)
	if st.saves != savesBefore+1 {
		t.Error("delete should persist")
	}
	month, _ := svc.Month(0)
	for _, ev := range month.Events {
		if ev.ID == created.ID {
			t.Error("event still present after delete")
		}
	}
}

func TestSwitchYear_LoadsStoredSnapshot(t *testing.T) {
	svc, _ := newTestSession(t)
	created, _ := svc.CreateEvent(6, models.Event{Name: "Férias", Day: 15, Type: models.EventSpecial})

	svc.SwitchYear(2026)
	if svc.Year() != 2026 {
		t.Fatalf("year = %d", svc.Year())
	}

	// 2026 is unsupported rule data and was never stored with events.
	month, _ := svc.Month(6)
	if len(month.Events) != 0 {
		t.Errorf("fresh 2026 July should have no events, got %d", len(month.Events))
	}

	// Switching back restores the stored 2025 snapshot, user event included.
	svc.SwitchYear(2025)
	month, _ = svc.Month(6)
	found := false
	for _, ev := range month.Events {
		if ev.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("stored 2025 event lost across year switches")
	}
}

func TestSwitchYear_CarryOverOption(t *testing.T) {
	st := newMockStore()
	svc := New(st, events.New())
	svc.SetCarryOverEvents(true)
	svc.SwitchYear(2025)

	created, _ := svc.CreateEvent(2, models.Event{Name: "Transplante", Day: 7, Type: models.EventSpecial})
	delete(st.stored, 2027) // ensure no stored data for the target year

	svc.SwitchYear(2027)
	month, _ := svc.Month(2)
	found := false
	for _, ev := range month.Events {
		if ev.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("carry-over enabled: previous year's events should be transplanted")
	}
}

func TestResume(t *testing.T) {
	st := newMockStore()
	first := New(st, events.New())
	first.SwitchYear(2025)
	created, _ := first.CreateEvent(10, models.Event{Name: "Retro", Day: 28, Type: models.EventMeeting})

	// A new session resumes where the last one stopped.
	second := New(st, events.New())
	second.Resume(2024)
	if second.Year() != 2025 {
		t.Fatalf("resumed year = %d, want 2025", second.Year())
	}
	month, _ := second.Month(10)
	found := false
	for _, ev := range month.Events {
		if ev.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Error("resumed session missing persisted event")
	}

	// Without a resume record the default year opens.
	third := New(newMockStore(), events.New())
	third.Resume(2024)
	if third.Year() != 2024 {
		t.Errorf("default year = %d, want 2024", third.Year())
	}
}

func TestMonths_ReturnsCopies(t *testing.T) {
	svc, _ := newTestSession(t)
	months := svc.Months()
	if len(months) != models.MonthsPerYear {
		t.Fatalf("got %d months", len(months))
	}
	if len(months[0].Events) == 0 {
		t.Fatal("January 2025 should carry generated events")
	}
	months[0].Events[0].Name = "mutated"

	again := svc.Months()
	if again[0].Events[0].Name == "mutated" {
		t.Error("Months leaks internal state")
	}
}
