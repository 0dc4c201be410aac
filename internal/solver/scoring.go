package solver

import "github.com/Anuj10110/ai-timetable-generator/internal/domain"

// AssignmentScore implements §4.6's per-assignment soft objective for
// placing course into classroom/slot under faculty.
func AssignmentScore(course domain.Course, faculty domain.Faculty, classroom domain.Classroom, slot domain.TimeSlot) float64 {
	score := 10 * faculty.PreferenceScore(slot)

	utilisation := float64(course.EnrolledStudents) / float64(classroom.Capacity)
	if utilisation >= 0.7 && utilisation <= 1.0 {
		score += 20
	} else {
		score += 10 * utilisation
	}

	startHour := slot.StartHour()
	switch {
	case startHour >= 9 && startHour <= 11:
		score += 5
	case startHour >= 14 && startHour <= 16:
		score += 3
	}

	if course.CourseType == domain.Lab && classroom.RoomType == "Lab" {
		score += 15
	}

	return score
}

// Candidate is one (slot, room, faculty) tuple a session could be
// placed under, together with its assignment score.
type Candidate struct {
	Slot      domain.TimeSlot
	Classroom domain.Classroom
	Faculty   domain.Faculty
	Score     float64
}

// feasibleCandidates enumerates every (slot, room, faculty) tuple for
// session that satisfies the unary constraints: faculty availability,
// room compatibility, and slot duration — independent of any
// in-progress schedule. Iteration order is deterministic (problem
// list order), matching §4.2's tie-break-by-insertion-order rule.
func feasibleCandidates(p Problem, session Session) []Candidate {
	course := session.Course
	eligible := p.EligibleFaculty(course)

	var candidates []Candidate
	for _, slot := range p.TimeSlots {
		if slot.Duration() < course.DurationMin {
			continue
		}
		for _, room := range p.Classrooms {
			if !domain.RoomCompatible(course, room) {
				continue
			}
			for _, fac := range eligible {
				if !fac.IsAvailable(slot) {
					continue
				}
				candidates = append(candidates, Candidate{
					Slot:      slot,
					Classroom: room,
					Faculty:   fac,
					Score:     AssignmentScore(course, fac, room, slot),
				})
			}
		}
	}
	return candidates
}
