package palette

import "equipecal/models"

// Display color names.
const (
	Blue   = "blue"
	Green  = "green"
	Red    = "red"
	Yellow = "yellow"
	Purple = "purple"
	Pink   = "pink"
	Orange = "orange"
	Indigo = "indigo"
	Cyan   = "cyan"
	Gray   = "gray"
)

var priorityColors = map[models.Priority]string{
	models.PriorityCritical:  Red,
	models.PriorityUrgent:    Orange,
	models.PriorityAttention: Yellow,
}

var typeColors = map[models.EventType]string{
	models.EventHoliday:     Blue,
	models.EventMeeting:     Green,
	models.EventAdvertising: Purple,
	models.EventApproval:    Orange,
	models.EventSpecial:     Pink,
	models.EventInPerson:    Indigo,
	models.EventOnline:      Cyan,
}

// Resolve returns the display color for an event. An explicit color override
// wins, then the priority tier, then the event type; unknown types are gray.
func Resolve(event models.Event) string {
	if event.Color != "" {
		return event.Color
	}
	if c, ok := priorityColors[event.Priority]; ok {
		return c
	}
	if c, ok := typeColors[event.Type]; ok {
		return c
	}
	return Gray
}

// Badge is the display badge for a priority tier.
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

var priorityBadges = map[models.Priority]Badge{
	models.PriorityCritical:  {Text: "Crítico (≤3 dias)", Color: Red},
	models.PriorityUrgent:    {Text: "Urgente (≤7 dias)", Color: Orange},
	models.PriorityAttention: {Text: "Atenção (≤15 dias)", Color: Yellow},
}

// PriorityBadge returns the badge for a priority tier, or nil for normal and
// unknown tiers. The day counts in the labels are display text only; no
// deadline is computed.
func PriorityBadge(priority models.Priority) *Badge {
	if b, ok := priorityBadges[priority]; ok {
		return &b
	}
	return nil
}
