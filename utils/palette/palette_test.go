package palette

import (
	"testing"

	"equipecal/models"
)

func TestResolve_OverrideBeatsPriorityBeatsType(t *testing.T) {
	ev := models.Event{Type: models.EventMeeting, Priority: models.PriorityCritical, Color: Purple}
	if got := Resolve(ev); got != Purple {
		t.Errorf("explicit color should win, got %q", got)
	}

	ev.Color = ""
	if got := Resolve(ev); got != Red {
		t.Errorf("critical priority should beat meeting type, got %q", got)
	}

	ev.Priority = models.PriorityNormal
	if got := Resolve(ev); got != Green {
		t.Errorf("meeting type color expected, got %q", got)
	}
}

func TestResolve_TypeTable(t *testing.T) {
	cases := []struct {
		typ  models.EventType
		want string
	}{
		{models.EventHoliday, Blue},
		{models.EventMeeting, Green},
		{models.EventAdvertising, Purple},
		{models.EventApproval, Orange},
		{models.EventSpecial, Pink},
		{models.EventInPerson, Indigo},
		{models.EventOnline, Cyan},
		{models.EventType("whatever"), Gray},
	}
	for _, c := range cases {
		if got := Resolve(models.Event{Type: c.typ}); got != c.want {
			t.Errorf("Resolve(type=%s) = %q, want %q", c.typ, got, c.want)
		}
	}
}

func TestResolve_PriorityTiers(t *testing.T) {
	if got := Resolve(models.Event{Priority: models.PriorityUrgent}); got != Orange {
		t.Errorf("urgent = %q, want orange", got)
	}
	if got := Resolve(models.Event{Priority: models.PriorityAttention}); got != Yellow {
		t.Errorf("attention = %q, want yellow", got)
	}
}

func TestPriorityBadge(t *testing.T) {
	b := PriorityBadge(models.PriorityCritical)
	if b == nil || b.Text != "Crítico (≤3 dias)" || b.Color != Red {
		t.Errorf("unexpected critical badge: %+v", b)
	}
	if PriorityBadge(models.PriorityNormal) != nil {
		t.Error("normal priority should have no badge")
	}
	if PriorityBadge(models.Priority("")) != nil {
		t.Error("missing priority should have no badge")
	}
}
