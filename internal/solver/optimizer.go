package solver

import (
	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/graph"
)

// Optimize implements §4.4's GraphBasedOptimiser.optimize: build the
// assignment graph over schedule's entries, greedy-color it, and walk
// color classes in ascending order looking for a strictly
// higher-scoring replacement for each entry that still fits the
// schedule being rebuilt.
func Optimize(p Problem, schedule *domain.Schedule) *domain.Schedule {
	assignmentGraph := graph.BuildAssignmentGraph(schedule)
	groups := assignmentGraph.EntryGroups()

	rebuilt := domain.NewSchedule()
	for _, group := range groups {
		for _, entry := range group {
			replacement, found := findBetterAssignment(p, entry, rebuilt)
			if found {
				rebuilt.AddEntry(replacement)
			} else {
				rebuilt.AddEntry(entry)
			}
		}
	}

	rebuilt.CalculateOptimizationScore()
	return rebuilt
}

// findBetterAssignment searches every (slot, room, faculty) tuple
// eligible for original.Course, looking for one that scores strictly
// higher than the original and does not conflict with the schedule
// being rebuilt.
func findBetterAssignment(p Problem, original domain.ScheduleEntry, rebuilt *domain.Schedule) (domain.ScheduleEntry, bool) {
	course := original.Course
	eligible := p.EligibleFaculty(course)
	originalScore := AssignmentScore(course, original.Faculty, original.Classroom, original.TimeSlot)

	bestScore := originalScore
	found := false
	var best domain.ScheduleEntry

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
				candidate := domain.ScheduleEntry{Course: course, Faculty: fac, Classroom: room, TimeSlot: slot}
				if len(rebuilt.CheckConflicts(candidate)) > 0 {
					continue
				}
				score := AssignmentScore(course, fac, room, slot)
				if score > bestScore {
					bestScore = score
					best = candidate
					found = true
				}
			}
		}
	}
	return best, found
}
