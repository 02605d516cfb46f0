package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"equipecal/models"
	"equipecal/services/builder"
	"equipecal/services/rules"
)

// memKV is an in-memory record store for tests.
type memKV struct {
	records map[string][]byte
	getErr  error
	putErr  error
	puts    int
}

func newMemKV() *memKV {
	return &memKV{records: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.records[key], nil
}

func (m *memKV) Put(key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.records[key] = value
	return nil
}

func newTestStore(kv KV) *Service {
	return New(kv, builder.New(rules.Default()))
}

func TestLoadYear_MissingBuildsFresh(t *testing.T) {
	svc := newTestStore(newMemKV())

	snap, fromStore := svc.LoadYear(2025)
	require.False(t, fromStore)
	require.Len(t, snap, models.MonthsPerYear)
	require.NotEmpty(t, snap[0].Events, "fresh 2025 skeleton should carry generated events")
}

func TestSaveYear_RoundTrip(t *testing.T) {
	kv := newMemKV()
	svc := newTestStore(kv)

	snap, _ := svc.LoadYear(2025)
	snap[2].Events = append(snap[2].Events, models.Event{
		ID: "user-1", Name: "Gravação", Day: 12, Type: models.EventInPerson,
		Location: "Estúdio 3", Participants: []string{"Ana Silva"},
		Priority: models.PriorityUrgent,
	})
	svc.SaveYear(2025, snap)

	loaded, fromStore := svc.LoadYear(2025)
	require.True(t, fromStore)
	require.Equal(t, snap, loaded, "reloaded snapshot should match field for field")
}

func TestLoadYear_DiscardsMalformed(t *testing.T) {
	kv := newMemKV()
	kv.records["calendar:2025"] = []byte("{not json")
	svc := newTestStore(kv)

	snap, fromStore := svc.LoadYear(2025)
	require.False(t, fromStore)
	require.Len(t, snap, models.MonthsPerYear)
}

func TestLoadYear_DiscardsWrongLength(t *testing.T) {
	kv := newMemKV()
	kv.records["calendar:2025"] = []byte(`[{"name":"Janeiro","events":[]}]`)
	svc := newTestStore(kv)

	_, fromStore := svc.LoadYear(2025)
	require.False(t, fromStore)
}

func TestLoadYear_FallsBackOnStorageError(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")
	svc := newTestStore(kv)

	snap, fromStore := svc.LoadYear(2025)
	require.False(t, fromStore)
	require.Len(t, snap, models.MonthsPerYear)
}

func TestSaveYear_SwallowsPutError(t *testing.T) {
	kv := newMemKV()
	kv.putErr = errors.New("disk full")
	svc := newTestStore(kv)

	snap, _ := svc.LoadYear(2025)
	svc.SaveYear(2025, snap) // must not panic or propagate
}

func TestCurrentRecord_RoundTrip(t *testing.T) {
	kv := newMemKV()
	svc := newTestStore(kv)

	snap, _ := svc.LoadYear(2025)
	svc.SaveCurrent(2025, snap)

	year, loaded, ok := svc.LoadCurrent()
	require.True(t, ok)
	require.Equal(t, 2025, year)
	require.Equal(t, snap, loaded)
}

func TestLoadCurrent_AbsentOrBroken(t *testing.T) {
	kv := newMemKV()
	svc := newTestStore(kv)

	_, _, ok := svc.LoadCurrent()
	require.False(t, ok)

	kv.records["calendar:current"] = []byte(`{"year":2025,"months":[]}`)
	_, _, ok = svc.LoadCurrent()
	require.False(t, ok, "short month list must be discarded")
}

func TestLoadYear_RecomputesStatus(t *testing.T) {
	kv := newMemKV()
	svc := newTestStore(kv)

	snap, _ := svc.LoadYear(2025)
	for i := range snap {
		snap[i].Status = models.MonthStatus("bogus")
	}
	svc.SaveYear(2025, snap)

	loaded, fromStore := svc.LoadYear(2025)
	require.True(t, fromStore)
	for _, m := range loaded {
		require.Contains(t, []models.MonthStatus{
			models.StatusCompleted, models.StatusCurrent, models.StatusUpcoming,
		}, m.Status, "status must be rederived on load")
	}
}
