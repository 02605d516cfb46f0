package models

import "time"

// EventType classifies a calendar entry.
type EventType string

const (
	EventHoliday     EventType = "holiday"
	EventMeeting     EventType = "meeting"
	EventAdvertising EventType = "advertising"
	EventApproval    EventType = "approval"
	EventSpecial     EventType = "special"
	EventInPerson    EventType = "in-person-event"
	EventOnline      EventType = "online-event"
)

// MeetingSubtype refines meeting events; meaningless for other types.
type MeetingSubtype string

const (
	SubtypeTeam       MeetingSubtype = "team"
	SubtypeInfluencer MeetingSubtype = "influencer"
	SubtypeBrand      MeetingSubtype = "brand"
	SubtypeStrategic  MeetingSubtype = "strategic"
)

// Priority is the four-level severity tier used for sorting and display color.
type Priority string

const (
	PriorityCritical  Priority = "critical"
	PriorityUrgent    Priority = "urgent"
	PriorityAttention Priority = "attention"
	PriorityNormal    Priority = "normal"
)

var priorityRank = map[Priority]int{
	PriorityCritical:  0,
	PriorityUrgent:    1,
	PriorityAttention: 2,
	PriorityNormal:    3,
}

// Rank returns the severity order of the priority, most severe first.
// Unknown or missing priorities rank as normal.
func (p Priority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[PriorityNormal]
}

// RecurrenceUnit is the repeat cadence of a recurring event.
type RecurrenceUnit string

const (
	RecurDaily   RecurrenceUnit = "daily"
	RecurWeekly  RecurrenceUnit = "weekly"
	RecurMonthly RecurrenceUnit = "monthly"
	RecurYearly  RecurrenceUnit = "yearly"
)

// Team member roles.
const (
	RolePrincipal   = "principal"
	RoleAdvertising = "advertising"
)

// TeamMember is a month's assigned owner. Immutable once assigned.
type TeamMember struct {
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"` // "principal" | "advertising"
	AvatarRef string `json:"avatarRef" yaml:"avatar"`
	Initials  string `json:"initials" yaml:"initials"`
}

// Event is a single calendar entry within a month. Subtype, participants and
// location only carry meaning for their associated type; the storage layer
// keeps them as plain optional fields.
type Event struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Day            int            `json:"day"`
	Time           string         `json:"time,omitempty"` // HH:MM
	Type           EventType      `json:"type"`
	Subtype        MeetingSubtype `json:"subtype,omitempty"`
	Description    string         `json:"description,omitempty"`
	Brands         []string       `json:"brands,omitempty"`
	Influencers    []string       `json:"influencers,omitempty"`
	Participants   []string       `json:"participants,omitempty"`
	Location       string         `json:"location,omitempty"`
	Recurs         bool           `json:"recurs,omitempty"`
	RecurrenceUnit RecurrenceUnit `json:"recurrenceUnit,omitempty"`
	Priority       Priority       `json:"priority,omitempty"`
	Color          string         `json:"color,omitempty"` // explicit display override
}

// Clone returns a copy of the event with its own backing slices.
func (e Event) Clone() Event {
	c := e
	c.Brands = cloneStrings(e.Brands)
	c.Influencers = cloneStrings(e.Influencers)
	c.Participants = cloneStrings(e.Participants)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// MonthStatus is derived from comparing the month against the current date.
// It is recomputed on load, never trusted from storage.
type MonthStatus string

const (
	StatusCompleted MonthStatus = "completed"
	StatusCurrent   MonthStatus = "current"
	StatusUpcoming  MonthStatus = "upcoming"
)

// StatusFor derives the status of (year, monthIndex) relative to now.
// monthIndex is 0-based (0 = January).
func StatusFor(year, monthIndex int, now time.Time) MonthStatus {
	nowYear, nowMonth := now.Year(), int(now.Month())-1
	switch {
	case year < nowYear || (year == nowYear && monthIndex < nowMonth):
		return StatusCompleted
	case year == nowYear && monthIndex == nowMonth:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}

// Month is one slot of a year snapshot. Events keep insertion order.
type Month struct {
	Name        string      `json:"name"`
	Status      MonthStatus `json:"status"`
	Principal   TeamMember  `json:"principal"`
	Advertising TeamMember  `json:"advertising"`
	Events      []Event     `json:"events"`
}

// Clone returns a copy of the month with its own event slice.
func (m Month) Clone() Month {
	c := m
	c.Events = make([]Event, len(m.Events))
	for i, ev := range m.Events {
		c.Events[i] = ev.Clone()
	}
	return c
}

// MonthsPerYear is the fixed length of a YearSnapshot.
const MonthsPerYear = 12

// YearSnapshot is the full in-memory state for one year: exactly 12 months
// indexed 0 (January) through 11 (December).
type YearSnapshot []Month

// Clone returns a deep copy of the snapshot.
func (s YearSnapshot) Clone() YearSnapshot {
	out := make(YearSnapshot, len(s))
	for i, m := range s {
		out[i] = m.Clone()
	}
	return out
}

// RefreshStatus recomputes every month's derived status in place.
func (s YearSnapshot) RefreshStatus(year int, now time.Time) {
	for i := range s {
		s[i].Status = StatusFor(year, i, now)
	}
}
