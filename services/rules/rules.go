package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"equipecal/models"
)

var ErrBadHolidayDate = errors.New("invalid holiday date")

// Holiday is one entry of the holiday table. Date is "MM-DD"; the year comes
// from the table the entry lives in.
type Holiday struct {
	Name        string   `yaml:"name" json:"name"`
	Date        string   `yaml:"date" json:"date"`
	Brands      []string `yaml:"brands" json:"brands,omitempty"`
	Influencers []string `yaml:"influencers" json:"influencers,omitempty"`
}

// MonthDay parses the entry's MM-DD date.
func (h Holiday) MonthDay() (month, day int, err error) {
	parts := strings.SplitN(h.Date, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHolidayDate, h.Date)
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHolidayDate, h.Date)
	}
	return month, day, nil
}

// RosterSlot holds the two owners assigned to one month of the rotation.
type RosterSlot struct {
	Principal   models.TeamMember `yaml:"principal" json:"principal"`
	Advertising models.TeamMember `yaml:"advertising" json:"advertising"`
}

// MeetingRule describes the recurring team meeting cadence.
type MeetingRule struct {
	Weekdays []int  `yaml:"weekdays" json:"weekdays"` // 0 = Sunday
	Time     string `yaml:"time" json:"time"`         // HH:MM
	Label    string `yaml:"label" json:"label"`       // name prefix, weekday appended
	Color    string `yaml:"color" json:"color"`
}

// Set is the full rule configuration injected into the year builder: month
// names, the year-independent roster rotation, the holiday tables by year,
// and the meeting cadence. It is always passed explicitly, never read from a
// package global, so tests can fabricate their own.
type Set struct {
	MonthNames []string          `yaml:"months" json:"months"`
	Roster     []RosterSlot      `yaml:"roster" json:"roster"`
	Holidays   map[int][]Holiday `yaml:"holidays" json:"holidays"`
	Meetings   MeetingRule       `yaml:"meetings" json:"meetings"`
}

// HolidaysFor returns the holiday table for a year. Years outside the
// configured range yield an empty table, not an error.
func (s *Set) HolidaysFor(year int) []Holiday {
	return s.Holidays[year]
}

// Supports reports whether rule data exists for the year. Holiday and meeting
// generation are both gated on this; unsupported years get empty event lists.
func (s *Set) Supports(year int) bool {
	_, ok := s.Holidays[year]
	return ok
}

// Validate checks structural requirements: 12 month names, 12 roster slots,
// parseable holiday dates, and meeting weekdays in range.
func (s *Set) Validate() error {
	if len(s.MonthNames) != models.MonthsPerYear {
		return fmt.Errorf("rule set needs %d month names, has %d", models.MonthsPerYear, len(s.MonthNames))
	}
	if len(s.Roster) != models.MonthsPerYear {
		return fmt.Errorf("rule set needs %d roster slots, has %d", models.MonthsPerYear, len(s.Roster))
	}
	for year, table := range s.Holidays {
		for _, h := range table {
			if _, _, err := h.MonthDay(); err != nil {
				return fmt.Errorf("holiday %q in %d: %w", h.Name, year, err)
			}
		}
	}
	for _, wd := range s.Meetings.Weekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("meeting weekday %d out of range", wd)
		}
	}
	return nil
}

// Load reads a rule set from a YAML file. A missing file yields the built-in
// defaults. Top-level sections present in the file replace the corresponding
// default section wholesale.
func Load(path string) (*Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}

	var override Set
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}

	if override.MonthNames != nil {
		set.MonthNames = override.MonthNames
	}
	if override.Roster != nil {
		set.Roster = override.Roster
	}
	if override.Holidays != nil {
		set.Holidays = override.Holidays
	}
	if override.Meetings.Weekdays != nil || override.Meetings.Time != "" || override.Meetings.Label != "" {
		set.Meetings = override.Meetings
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("rule set %s: %w", path, err)
	}
	return set, nil
}

// weekdayNames are the Portuguese display names appended to meeting labels.
var weekdayNames = []string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// WeekdayName returns the Portuguese name for a weekday (0 = Sunday).
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayNames[weekday]
}
