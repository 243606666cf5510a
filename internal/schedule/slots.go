package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the ISO form used as the identity of a selectable date.
const DateLayout = "2006-01-02"

// WindowDays is how many calendar days, starting today, are bookable.
const WindowDays = 8

// Slot is one of the five fixed 90-minute windows in a business day.
type Slot struct {
	Index int
	Start string // canonical stored form, "HH:MM:SS " with trailing space
	Label string // display form, "HH:MM-HH:MM"
}

// Slots is the single slot table used by both booking and rescheduling.
// The stored Start strings keep their trailing space; the reminder sweep
// matches on them literally.
var Slots = [5]Slot{
	{Index: 0, Start: "09:00:00 ", Label: "09:00-10:30"},
	{Index: 1, Start: "10:30:00 ", Label: "10:30-12:00"},
	{Index: 2, Start: "12:00:00 ", Label: "12:00-13:30"},
	{Index: 3, Start: "13:30:00 ", Label: "13:30-15:00"},
	{Index: 4, Start: "15:00:00 ", Label: "15:00-16:30"},
}

// SlotTime converts a selected slot index into the canonical stored time
// string. The second return value is false when the index is out of range.
func SlotTime(index int) (string, bool) {
	if index < 0 || index >= len(Slots) {
		return "", false
	}
	return Slots[index].Start, true
}

// DateChoice pairs a date's identity string with its display value.
type DateChoice struct {
	Value   string
	Display time.Time
}

// DateChoices returns the ordered window of selectable dates beginning at
// from (inclusive). Booking computes the window from today; rescheduling
// computes it from the appointment's current date.
func DateChoices(from time.Time) []DateChoice {
	y, m, d := from.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	choices := make([]DateChoice, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		d := day.AddDate(0, 0, i)
		choices = append(choices, DateChoice{Value: d.Format(DateLayout), Display: d})
	}
	return choices
}

// ParseDate validates a submitted date identity against the window starting
// at from and returns the parsed day.
func ParseDate(value string, from time.Time) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	for _, choice := range DateChoices(from) {
		if choice.Value == value {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %s outside booking window", value)
}
