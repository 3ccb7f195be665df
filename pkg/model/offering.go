package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Weekday identifies the day of a time slot.
type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

var weekdayNames = map[string]Weekday{
	"mon": Monday, "monday": Monday,
	"tue": Tuesday, "tuesday": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday,
	"thu": Thursday, "thursday": Thursday,
	"fri": Friday, "friday": Friday,
	"sat": Saturday, "saturday": Saturday,
	"sun": Sunday, "sunday": Sunday,
}

// ParseWeekday accepts the three-letter abbreviation or the full English name,
// case-insensitively. Anything else, including longer strings sharing a prefix
// with a day name, is rejected.
func ParseWeekday(s string) (Weekday, error) {
	if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return day, nil
	}
	return "", fmt.Errorf("unknown weekday %q", s)
}

// Valid reports whether the weekday is one of the seven known days.
func (d Weekday) Valid() bool {
	_, ok := weekdayOrder[d]
	return ok
}

// Order returns the calendar position of the weekday (Monday = 0).
func (d Weekday) Order() int {
	return weekdayOrder[d]
}

// Category distinguishes required from elective offerings.
type Category string

const (
	Required Category = "Required"
	Elective Category = "Elective"
)

// ParseCategory accepts "Required" or "Elective", case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required":
		return Required, nil
	case "elective":
		return Elective, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// TimeSlot is one occupied (day, period) cell, optionally annotated with a room.
// The room plays no part in conflict detection.
type TimeSlot struct {
	Day    Weekday `json:"day" mapstructure:"day" validate:"weekday"`
	Period int     `json:"period" mapstructure:"period" validate:"gte=1"`
	Room   string  `json:"room,omitempty" mapstructure:"room"`
}

// SlotKey identifies a timetable cell. Two offerings collide when they occupy
// the same key within one candidate.
type SlotKey struct {
	Day    Weekday
	Period int
}

// Key returns the slot's identity for conflict detection.
func (s TimeSlot) Key() SlotKey {
	return SlotKey{Day: s.Day, Period: s.Period}
}

// Offering is one concrete timetable entry for a named course: a specific
// section, teacher and set of time slots. Offerings sharing a Name are
// alternatives for the same course.
type Offering struct {
	Name      string     `json:"name" mapstructure:"name" validate:"required"`
	Category  Category   `json:"category" mapstructure:"category" validate:"required,category"`
	SectionID string     `json:"sectionId" mapstructure:"sectionId"`
	Credits   int        `json:"credits" mapstructure:"credits" validate:"gte=0"`
	Priority  int        `json:"priority" mapstructure:"priority" validate:"gte=1,lte=5"`
	TimeSlots []TimeSlot `json:"timeSlots" mapstructure:"timeSlots" validate:"dive"`
	Mandatory bool       `json:"mandatory" mapstructure:"mandatory"`
	Excluded  bool       `json:"excluded" mapstructure:"excluded"`
	Teacher   string     `json:"teacher,omitempty" mapstructure:"teacher"`
	Notes     string     `json:"notes,omitempty" mapstructure:"notes"`
}

// DefaultPriority is assigned when a record carries no preference weight.
const DefaultPriority = 3

// NormalizeTimeSlots removes duplicate (day, period) entries, keeping the first
// occurrence of each, and orders the result by day then period. Duplicate slots
// within one offering are meaningless.
func NormalizeTimeSlots(slots []TimeSlot) []TimeSlot {
	seen := make(map[SlotKey]bool, len(slots))
	normalized := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if seen[slot.Key()] {
			continue
		}
		seen[slot.Key()] = true
		normalized = append(normalized, slot)
	}
	slices.SortFunc(normalized, CompareTimeSlots)
	return normalized
}

// CompareTimeSlots orders slots by day then period.
func CompareTimeSlots(a, b TimeSlot) int {
	if dayComparison := cmp.Compare(a.Day.Order(), b.Day.Order()); dayComparison != 0 {
		return dayComparison
	}
	return cmp.Compare(a.Period, b.Period)
}
