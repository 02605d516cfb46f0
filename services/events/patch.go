package events

import "equipecal/models"

// Patch carries the fields of an update. Nil fields are left alone; set
// fields replace the existing value shallowly, including the name sets.
type Patch struct {
	Name           *string                `json:"name,omitempty"`
	Day            *int                   `json:"day,omitempty"`
	Time           *string                `json:"time,omitempty"`
	Type           *models.EventType      `json:"type,omitempty"`
	Subtype        *models.MeetingSubtype `json:"subtype,omitempty"`
	Description    *string                `json:"description,omitempty"`
	Brands         *[]string              `json:"brands,omitempty"`
	Influencers    *[]string              `json:"influencers,omitempty"`
	Participants   *[]string              `json:"participants,omitempty"`
	Location       *string                `json:"location,omitempty"`
	Recurs         *bool                  `json:"recurs,omitempty"`
	RecurrenceUnit *models.RecurrenceUnit `json:"recurrenceUnit,omitempty"`
	Priority       *models.Priority       `json:"priority,omitempty"`
	Color          *string                `json:"color,omitempty"`
}

func (p Patch) applyTo(ev *models.Event) {
	if p.Name != nil {
		ev.Name = *p.Name
	}
	if p.Day != nil {
		ev.Day = *p.Day
	}
	if p.Time != nil {
		ev.Time = *p.Time
	}
	if p.Type != nil {
		ev.Type = *p.Type
	}
	if p.Subtype != nil {
		ev.Subtype = *p.Subtype
	}
	if p.Description != nil {
		ev.Description = *p.Description
	}
	if p.Brands != nil {
		ev.Brands = append([]string(nil), (*p.Brands)...)
	}
	if p.Influencers != nil {
		ev.Influencers = append([]string(nil), (*p.Influencers)...)
	}
	if p.Participants != nil {
		ev.Participants = append([]string(nil), (*p.Participants)...)
	}
	if p.Location != nil {
		ev.Location = *p.Location
	}
	if p.Recurs != nil {
		ev.Recurs = *p.Recurs
	}
	if p.RecurrenceUnit != nil {
		ev.RecurrenceUnit = *p.RecurrenceUnit
	}
	if p.Priority != nil {
		ev.Priority = *p.Priority
	}
	if p.Color != nil {
		ev.Color = *p.Color
	}
}
