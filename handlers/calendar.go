package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"equipecal/models"
	"equipecal/services/calendar"
	"equipecal/services/events"
	"equipecal/services/query"
	"equipecal/utils/palette"
)

// CalendarHandler serves the calendar API over the active session.
type CalendarHandler struct {
	Service *calendar.Service
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(service *calendar.Service) *CalendarHandler {
	return &CalendarHandler{Service: service}
}

// EventView is an event enriched with its resolved display color and badge.
type EventView struct {
	models.Event
	DisplayColor string         `json:"displayColor"`
	Badge        *palette.Badge `json:"badge,omitempty"`
}

func viewOf(ev models.Event) EventView {
	return EventView{
		Event:        ev,
		DisplayColor: palette.Resolve(ev),
		Badge:        palette.PriorityBadge(ev.Priority),
	}
}

func viewsOf(evs []models.Event) []EventView {
	out := make([]EventView, len(evs))
	for i, ev := range evs {
		out[i] = viewOf(ev)
	}
	return out
}

// YearResponse is the API response for the year view.
type YearResponse struct {
	Year   int            `json:"year"`
	Months []models.Month `json:"months"`
}

// MonthResponse is the API response for the month view.
type MonthResponse struct {
	Year        int                `json:"year"`
	MonthIndex  int                `json:"monthIndex"`
	Name        string             `json:"name"`
	Status      models.MonthStatus `json:"status"`
	Principal   models.TeamMember  `json:"principal"`
	Advertising models.TeamMember  `json:"advertising"`
	Events      []EventView        `json:"events"`
	Total       int                `json:"total"`
}

// EventListResponse wraps day and week views.
type EventListResponse struct {
	Events []EventView `json:"events"`
	Total  int         `json:"total"`
}

// GetYear returns the active year's twelve months.
func (h *CalendarHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, YearResponse{
		Year:   h.Service.Year(),
		Months: h.Service.Months(),
	})
}

// SwitchYear activates another year and returns its months.
func (h *CalendarHandler) SwitchYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}

	h.Service.SwitchYear(year)
	writeJSON(w, http.StatusOK, YearResponse{
		Year:   h.Service.Year(),
		Months: h.Service.Months(),
	})
}

// GetMonth returns one month with its events searched, filtered, and sorted
// per the q, type, and sort query parameters.
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	monthIndex, month, ok := h.requireMonth(w, r)
	if !ok {
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	typeFilter := strings.TrimSpace(r.URL.Query().Get("type"))
	sortKey := strings.TrimSpace(r.URL.Query().Get("sort"))
	if sortKey == "" {
		sortKey = query.SortByDate
	}

	matched := query.SearchAndFilter(month, term, typeFilter)
	sorted := query.Sort(matched, sortKey)

	writeJSON(w, http.StatusOK, MonthResponse{
		Year:        h.Service.Year(),
		MonthIndex:  monthIndex,
		Name:        month.Name,
		Status:      month.Status,
		Principal:   month.Principal,
		Advertising: month.Advertising,
		Events:      viewsOf(sorted),
		Total:       len(sorted),
	})
}

// GetDay returns the events on one day of a month.
func (h *CalendarHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	_, month, ok := h.requireMonth(w, r)
	if !ok {
		return
	}

	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil || day < 1 || day > 31 {
		writeError(w, http.StatusBadRequest, "invalid day")
		return
	}

	evs := query.EventsOnDay(month, day)
	writeJSON(w, http.StatusOK, EventListResponse{Events: viewsOf(evs), Total: len(evs)})
}

// GetWeek returns the events in the 7-day bucket containing today.
func (h *CalendarHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	_, month, ok := h.requireMonth(w, r)
	if !ok {
		return
	}

	evs := query.EventsInCurrentWeek(month)
	writeJSON(w, http.StatusOK, EventListResponse{Events: viewsOf(evs), Total: len(evs)})
}

// CreateEvent adds a user event to a month.
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	monthIndex, _, ok := h.requireMonth(w, r)
	if !ok {
		return
	}

	var draft models.Event
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	created, err := h.Service.CreateEvent(monthIndex, draft)
	if err != nil {
		if errors.Is(err, events.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(created))
}

// UpdateEvent patches an event in place.
func (h *CalendarHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	monthIndex, _, ok := h.requireMonth(w, r)
	if !ok {
		return
	}
	eventID := mux.Vars(r)["eventID"]

	var patch events.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid patch payload")
		return
	}

	updated, err := h.Service.UpdateEvent(monthIndex, eventID, patch)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, events.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, viewOf(updated))
}

// DeleteEvent removes an event. Deleting an unknown id still returns 204.
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	monthIndex, _, ok := h.requireMonth(w, r)
	if !ok {
		return
	}

	h.Service.DeleteEvent(monthIndex, mux.Vars(r)["eventID"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *CalendarHandler) requireMonth(w http.ResponseWriter, r *http.Request) (int, models.Month, bool) {
	monthIndex, err := strconv.Atoi(mux.Vars(r)["month"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month index")
		return 0, models.Month{}, false
	}

	month, ok := h.Service.Month(monthIndex)
	if !ok {
		writeError(w, http.StatusNotFound, "month not found")
		return 0, models.Month{}, false
	}
	return monthIndex, month, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
