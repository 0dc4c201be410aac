package domain

import "fmt"

// FacultyUnavailability records a faculty member's inability to teach
// during a recurring weekly window. Per the normalized design, a
// window is expressed as (day_of_week, start_min, end_min) rather than
// an absolute date range: a faculty member reported unavailable for a
// calendar date is projected onto that date's weekday for the purposes
// of conflict detection against the (recurring) weekly schedule.
type FacultyUnavailability struct {
	FacultyID string
	Day       DayOfWeek
	StartMin  int
	EndMin    int
	Reason    UnavailabilityReason
	Priority  int
	Note      string
}

// Validate enforces 0 <= start < end <= 1440.
func (u FacultyUnavailability) Validate() error {
	if u.StartMin < 0 || u.EndMin > 1440 || u.StartMin >= u.EndMin {
		return fmt.Errorf("faculty %s: invalid unavailability window [%d, %d)", u.FacultyID, u.StartMin, u.EndMin)
	}
	return nil
}

// ConflictsWithSlot reports whether slot falls within this
// unavailability window: same weekday and minute ranges intersect.
func (u FacultyUnavailability) ConflictsWithSlot(slot TimeSlot) bool {
	if u.Day != slot.Day {
		return false
	}
	return u.StartMin < slot.End && slot.Start < u.EndMin
}

// AffectsEntry reports whether the unavailability applies to the
// faculty member on the given entry's slot.
func (u FacultyUnavailability) AffectsEntry(e ScheduleEntry) bool {
	return u.FacultyID == e.Faculty.ID && u.ConflictsWithSlot(e.TimeSlot)
}
