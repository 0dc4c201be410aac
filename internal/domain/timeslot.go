package domain

import "fmt"

// TimeSlot is a candidate meeting window on a single working day.
// Start and End are minutes since midnight; the range is half-open
// [Start, End).
type TimeSlot struct {
	ID    string
	Day   DayOfWeek
	Start int
	End   int
}

// Duration returns the slot length in minutes.
func (t TimeSlot) Duration() int {
	return t.End - t.Start
}

// Validate enforces the TimeSlot invariant: 0 <= start < end <= 24*60.
func (t TimeSlot) Validate() error {
	if t.Start < 0 || t.Start >= t.End || t.End > 24*60 {
		return fmt.Errorf("time slot %s: invalid range [%d, %d)", t.ID, t.Start, t.End)
	}
	return nil
}

// Overlaps reports whether a and b fall on the same day and their
// half-open minute ranges intersect. Reflexive for equal slots,
// symmetric by construction, and always false across differing days.
func Overlaps(a, b TimeSlot) bool {
	if a.Day != b.Day {
		return false
	}
	return a.Start < b.End && b.Start < a.End
}

// StartHour returns the hour-of-day the slot begins in, used by the
// time-of-day scoring bonuses in §4.6.
func (t TimeSlot) StartHour() int {
	return t.Start / 60
}
