// Package store is the persistence adapter for year snapshots. Snapshots are
// stored as one JSON record per year plus an unscoped "current" record used
// for session resume. Loads never fail the caller: anything missing or
// malformed is discarded in favor of a freshly built skeleton. Saves are
// best-effort; failures are logged and swallowed.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"equipecal/models"
)

// KV is the durable key-value record store underneath the adapter.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Builder produces a fresh year skeleton when storage has nothing usable.
type Builder interface {
	Build(year int) models.YearSnapshot
}

const currentKey = "calendar:current"

func yearKey(year int) string {
	return fmt.Sprintf("calendar:%d", year)
}

// currentRecord is the session-resume payload under the "current" key.
type currentRecord struct {
	Year   int                 `json:"year"`
	Months models.YearSnapshot `json:"months"`
}

// Service loads and saves year snapshots.
type Service struct {
	kv      KV
	builder Builder
}

// New creates the adapter over a record store and a fallback builder.
func New(kv KV, builder Builder) *Service {
	return &Service{kv: kv, builder: builder}
}

// LoadYear returns the snapshot for a year and whether it came from storage.
// Missing, unreadable, or structurally invalid records fall back to a fresh
// build. Loaded snapshots get their derived month status recomputed.
func (s *Service) LoadYear(year int) (models.YearSnapshot, bool) {
	data, err := s.kv.Get(yearKey(year))
	if err != nil {
		log.Printf("[store] load year %d: %v, rebuilding", year, err)
		return s.builder.Build(year), false
	}
	if data == nil {
		return s.builder.Build(year), false
	}

	var snap models.YearSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[store] decode year %d: %v, rebuilding", year, err)
		return s.builder.Build(year), false
	}
	snap, ok := normalize(snap, year)
	if !ok {
		log.Printf("[store] discarding unusable snapshot for %d, rebuilding", year)
		return s.builder.Build(year), false
	}
	return snap, true
}

// SaveYear persists the year record, overwriting it whole. Best-effort.
func (s *Service) SaveYear(year int, snap models.YearSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("[store] encode year %d: %v", year, err)
		return
	}
	if err := s.kv.Put(yearKey(year), data); err != nil {
		log.Printf("[store] save year %d: %v", year, err)
	}
}

// SaveCurrent persists the session-resume record. Best-effort.
func (s *Service) SaveCurrent(year int, snap models.YearSnapshot) {
	data, err := json.Marshal(currentRecord{Year: year, Months: snap})
	if err != nil {
		log.Printf("[store] encode current: %v", err)
		return
	}
	if err := s.kv.Put(currentKey, data); err != nil {
		log.Printf("[store] save current: %v", err)
	}
}

// LoadCurrent returns the resume record if a usable one exists.
func (s *Service) LoadCurrent() (int, models.YearSnapshot, bool) {
	data, err := s.kv.Get(currentKey)
	if err != nil {
		log.Printf("[store] load current: %v", err)
		return 0, nil, false
	}
	if data == nil {
		return 0, nil, false
	}

	var rec currentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("[store] discarding unusable current record: %v", err)
		return 0, nil, false
	}
	snap, ok := normalize(rec.Months, rec.Year)
	if !ok {
		log.Printf("[store] discarding unusable current record")
		return 0, nil, false
	}
	return rec.Year, snap, true
}

// normalize validates the stored shape: it must be exactly 12 months.
// Derived status is recomputed, never trusted from storage, and event lists
// are normalized to non-nil.
func normalize(snap models.YearSnapshot, year int) (models.YearSnapshot, bool) {
	if len(snap) != models.MonthsPerYear {
		return nil, false
	}
	for i := range snap {
		if snap[i].Events == nil {
			snap[i].Events = []models.Event{}
		}
	}
	snap.RefreshStatus(year, time.Now())
	return snap, true
}
