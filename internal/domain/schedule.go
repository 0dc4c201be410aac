package domain

import "fmt"

// ScheduleEntry is a single (course, faculty, classroom, time_slot)
// assignment, optionally tied to a specific Batch.
type ScheduleEntry struct {
	Course    Course
	Faculty   Faculty
	Classroom Classroom
	TimeSlot  TimeSlot
	Batch     *Batch
}

func (e ScheduleEntry) String() string {
	return fmt.Sprintf("%s - %s - %s - %s %d-%d", e.Course.Code, e.Faculty.Name, e.Classroom.Name, e.TimeSlot.Day, e.TimeSlot.Start, e.TimeSlot.End)
}

// Conflicts implements §4.1's conflicts predicate: two entries conflict
// when their slots overlap and they share a faculty, classroom, or
// course.
func Conflicts(a, b ScheduleEntry) bool {
	if !Overlaps(a.TimeSlot, b.TimeSlot) {
		return false
	}
	return a.Faculty.ID == b.Faculty.ID || a.Classroom.ID == b.Classroom.ID || a.Course.ID == b.Course.ID
}

// EntryValid reports whether e satisfies the per-entry invariants of
// §3: room compatibility, faculty availability, and sufficient slot
// duration.
func EntryValid(e ScheduleEntry) bool {
	return RoomCompatible(e.Course, e.Classroom) &&
		e.Faculty.IsAvailable(e.TimeSlot) &&
		e.TimeSlot.Duration() >= e.Course.DurationMin
}

// Schedule is an ordered list of entries plus the conflicts recorded
// against rejected insertions and a cached optimization score.
type Schedule struct {
	Entries            []ScheduleEntry
	Conflicts          []string
	OptimizationScore  float64
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{}
}

// CheckConflicts returns a human-readable conflict description for
// every existing entry that would conflict with newEntry, without
// mutating the schedule.
func (s *Schedule) CheckConflicts(newEntry ScheduleEntry) []string {
	var conflicts []string
	for _, existing := range s.Entries {
		if !Overlaps(newEntry.TimeSlot, existing.TimeSlot) {
			continue
		}
		if newEntry.Faculty.ID == existing.Faculty.ID {
			conflicts = append(conflicts, fmt.Sprintf("faculty %s has conflicting classes", newEntry.Faculty.Name))
		}
		if newEntry.Classroom.ID == existing.Classroom.ID {
			conflicts = append(conflicts, fmt.Sprintf("classroom %s is double-booked", newEntry.Classroom.Name))
		}
		if newEntry.Course.ID == existing.Course.ID {
			conflicts = append(conflicts, fmt.Sprintf("course %s already has a session in this slot", newEntry.Course.Code))
		}
	}
	return conflicts
}

// AddEntry appends newEntry if and only if it conflicts with nothing
// already in the schedule. On rejection the conflict descriptions are
// recorded and false is returned; the schedule is left unmodified.
func (s *Schedule) AddEntry(newEntry ScheduleEntry) bool {
	conflicts := s.CheckConflicts(newEntry)
	if len(conflicts) > 0 {
		s.Conflicts = append(s.Conflicts, conflicts...)
		return false
	}
	s.Entries = append(s.Entries, newEntry)
	return true
}

// RemoveEntry deletes the first entry matching target by course,
// faculty, classroom and time slot identity. Used by the adaptive
// re-scheduler to pull an entry out before reinserting its
// replacement.
func (s *Schedule) RemoveEntry(target ScheduleEntry) bool {
	for i, e := range s.Entries {
		if e.Course.ID == target.Course.ID && e.Faculty.ID == target.Faculty.ID &&
			e.Classroom.ID == target.Classroom.ID && e.TimeSlot.ID == target.TimeSlot.ID {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// FacultyEntries returns every entry assigned to facultyID.
func (s *Schedule) FacultyEntries(facultyID string) []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range s.Entries {
		if e.Faculty.ID == facultyID {
			out = append(out, e)
		}
	}
	return out
}

// ClassroomEntries returns every entry assigned to classroomID.
func (s *Schedule) ClassroomEntries(classroomID string) []ScheduleEntry {
	var out []ScheduleEntry
	for _, e := range s.Entries {
		if e.Classroom.ID == classroomID {
			out = append(out, e)
		}
	}
	return out
}

// IsValid reports whether the schedule has recorded zero conflicts.
func (s *Schedule) IsValid() bool {
	return len(s.Conflicts) == 0
}

// RoomUtilisation returns the mean of per-entry enrolled/capacity
// ratios, each capped at 1.0.
func (s *Schedule) RoomUtilisation() float64 {
	if len(s.Entries) == 0 {
		return 0
	}
	var total float64
	for _, e := range s.Entries {
		u := float64(e.Course.EnrolledStudents) / float64(e.Classroom.Capacity)
		if u > 1.0 {
			u = 1.0
		}
		total += u
	}
	return total / float64(len(s.Entries))
}

// CalculateOptimizationScore implements the Schedule-level score of
// §4.7: sum of faculty preference scores, minus 10 per conflict, plus
// 5*mean room utilisation, all divided by entry count.
func (s *Schedule) CalculateOptimizationScore() float64 {
	if len(s.Entries) == 0 {
		s.OptimizationScore = 0
		return 0
	}
	var prefSum float64
	for _, e := range s.Entries {
		prefSum += e.Faculty.PreferenceScore(e.TimeSlot)
	}
	score := prefSum - 10*float64(len(s.Conflicts)) + 5*s.RoomUtilisation()
	s.OptimizationScore = score / float64(len(s.Entries))
	return s.OptimizationScore
}

// Summary mirrors the original's get_summary(): a snapshot of the
// headline counters used by the orchestrator's statistics surface.
type Summary struct {
	TotalEntries      int
	TotalConflicts    int
	OptimizationScore float64
	RoomUtilisation   float64
	IsValid           bool
}

// GetSummary returns the current Summary for the schedule.
func (s *Schedule) GetSummary() Summary {
	return Summary{
		TotalEntries:      len(s.Entries),
		TotalConflicts:    len(s.Conflicts),
		OptimizationScore: s.OptimizationScore,
		RoomUtilisation:   s.RoomUtilisation(),
		IsValid:           s.IsValid(),
	}
}
