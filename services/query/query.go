// Package query derives read views over a month's events: per-day lookup,
// combined search and type filtering, stable sorting, and the current-week
// view. Everything here is pure; nothing mutates the month it reads.
package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"equipecal/models"
	"equipecal/utils/datemath"
)

// Sort keys.
const (
	SortByDate     = "date"
	SortByName     = "name"
	SortByPriority = "priority"
)

// TypeFilterAll bypasses type filtering in SearchAndFilter.
const TypeFilterAll = "all"

// EventsOnDay returns the month's events falling on the given day, in their
// stored order.
func EventsOnDay(month models.Month, day int) []models.Event {
	var out []models.Event
	for _, ev := range month.Events {
		if ev.Day == day {
			out = append(out, ev)
		}
	}
	return out
}

// SearchAndFilter returns the events matching both the search term and the
// type filter. The term is a case-insensitive substring matched against the
// name, description, and any brand or influencer entry; an empty term matches
// everything. A filter of "all" (or empty) accepts every type.
func SearchAndFilter(month models.Month, term, typeFilter string) []models.Event {
	term = strings.ToLower(term)
	filterAll := typeFilter == "" || typeFilter == TypeFilterAll

	var out []models.Event
	for _, ev := range month.Events {
		if term != "" && !matchesTerm(ev, term) {
			continue
		}
		if !filterAll && string(ev.Type) != typeFilter {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func matchesTerm(ev models.Event, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(ev.Name), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(ev.Description), lowerTerm) {
		return true
	}
	for _, b := range ev.Brands {
		if strings.Contains(strings.ToLower(b), lowerTerm) {
			return true
		}
	}
	for _, inf := range ev.Influencers {
		if strings.Contains(strings.ToLower(inf), lowerTerm) {
			return true
		}
	}
	return false
}

// Sort returns the events ordered by the given key, leaving the input slice
// untouched. Date sorts ascending by day, name by Portuguese collation,
// priority by severity tier (critical first; missing priorities rank as
// normal). Ties keep their prior relative order.
func Sort(events []models.Event, key string) []models.Event {
	out := make([]models.Event, len(events))
	copy(out, events)

	switch key {
	case SortByName:
		// Collators are not safe for shared use, so build one per call.
		c := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	default: // SortByDate
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Day < out[j].Day
		})
	}
	return out
}

// EventsInWeek returns the events in the given 7-day bucket of the month
// (bucket 1 = days 1-7).
func EventsInWeek(month models.Month, bucket int) []models.Event {
	var out []models.Event
	for _, ev := range month.Events {
		if datemath.WeekBucket(ev.Day) == bucket {
			out = append(out, ev)
		}
	}
	return out
}

// EventsInCurrentWeek returns the events in the bucket containing today's
// day of month.
func EventsInCurrentWeek(month models.Month) []models.Event {
	return EventsInWeek(month, datemath.WeekBucket(time.Now().Day()))
}
