package builder

import (
	"fmt"
	"log"
	"time"

	"equipecal/models"
	"equipecal/services/rules"
	"equipecal/utils/datemath"
	"equipecal/utils/palette"
)

// Service builds the twelve-month skeleton for a year from an injected rule
// set: roster assignments, holiday events, and recurring team meetings.
type Service struct {
	rules *rules.Set

	// Now supplies the wall clock used for the derived month status.
	// Overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// New creates a builder over the given rule set.
func New(set *rules.Set) *Service {
	return &Service{rules: set, Now: time.Now}
}

// Build produces a fresh snapshot for the year: twelve months in calendar
// order with their roster pair, pre-populated with holiday and meeting events
// when rule data exists for the year. Two calls with the same year yield
// identical events; only the derived status follows the wall clock.
func (s *Service) Build(year int) models.YearSnapshot {
	now := s.Now()

	snap := make(models.YearSnapshot, models.MonthsPerYear)
	for i := range snap {
		snap[i] = models.Month{
			Name:        s.rules.MonthNames[i],
			Status:      models.StatusFor(year, i, now),
			Principal:   s.rules.Roster[i].Principal,
			Advertising: s.rules.Roster[i].Advertising,
			Events:      []models.Event{},
		}
	}

	if !s.rules.Supports(year) {
		return snap
	}

	for _, h := range s.rules.HolidaysFor(year) {
		month, day, err := h.MonthDay()
		if err != nil {
			log.Printf("[builder] skipping holiday %q: %v", h.Name, err)
			continue
		}
		snap[month-1].Events = append(snap[month-1].Events, models.Event{
			ID:          "holiday-" + h.Date,
			Name:        h.Name,
			Day:         day,
			Time:        "00:00",
			Type:        models.EventHoliday,
			Priority:    models.PriorityNormal,
			Color:       palette.Blue,
			Brands:      append([]string(nil), h.Brands...),
			Influencers: append([]string(nil), h.Influencers...),
		})
	}

	for i := range snap {
		snap[i].Events = append(snap[i].Events, s.meetingsFor(year, i+1)...)
	}

	return snap
}

// meetingsFor expands the meeting cadence into concrete events for one month
// (1..12).
func (s *Service) meetingsFor(year, month int) []models.Event {
	rule := s.rules.Meetings
	if len(rule.Weekdays) == 0 {
		return nil
	}

	cadence := make(map[int]bool, len(rule.Weekdays))
	for _, wd := range rule.Weekdays {
		cadence[wd] = true
	}

	var meetings []models.Event
	for day := 1; day <= datemath.DaysInMonth(month, year); day++ {
		wd := datemath.Weekday(month, day, year)
		if !cadence[wd] {
			continue
		}
		meetings = append(meetings, models.Event{
			ID:             fmt.Sprintf("meeting-%d-%d-%d", year, month, day),
			Name:           rule.Label + " - " + rules.WeekdayName(wd),
			Day:            day,
			Time:           rule.Time,
			Type:           models.EventMeeting,
			Subtype:        models.SubtypeTeam,
			Priority:       models.PriorityNormal,
			Color:          rule.Color,
			Recurs:         true,
			RecurrenceUnit: models.RecurWeekly,
		})
	}
	return meetings
}
