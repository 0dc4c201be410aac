package solver

import (
	"sort"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// Greedy implements §4.2: expand sessions, order the biggest and
// most structurally distinctive classes first, and for each one in
// turn insert the highest-scoring feasible candidate. A session with
// no feasible, non-conflicting candidate is skipped, leaving the
// resulting schedule potentially partial (§7's PartialSchedule case).
func Greedy(p Problem, req SolveRequest) *domain.Schedule {
	sessions := ExpandSessions(p.Courses, req.SelectedCourseIDs)
	sort.SliceStable(sessions, func(i, j int) bool {
		ci, cj := sessions[i].Course, sessions[j].Course
		if ci.EnrolledStudents != cj.EnrolledStudents {
			return ci.EnrolledStudents > cj.EnrolledStudents
		}
		return ci.CourseType.Ordinal() < cj.CourseType.Ordinal()
	})

	schedule := domain.NewSchedule()
	for _, session := range sessions {
		candidates := feasibleCandidates(p, session)

		bestScore := -1.0
		placed := false
		var chosen domain.ScheduleEntry
		for _, cand := range candidates {
			entry := domain.ScheduleEntry{
				Course:    session.Course,
				Faculty:   cand.Faculty,
				Classroom: cand.Classroom,
				TimeSlot:  cand.Slot,
			}
			if len(schedule.CheckConflicts(entry)) > 0 {
				continue
			}
			if cand.Score > bestScore {
				bestScore = cand.Score
				chosen = entry
				placed = true
			}
		}
		if placed {
			schedule.AddEntry(chosen)
		}
	}

	schedule.CalculateOptimizationScore()
	return schedule
}
