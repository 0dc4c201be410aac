// Package solver implements the greedy, CSP backtracking, and
// graph-based optimisation strategies that turn a Problem into a
// Schedule, plus the adaptive re-scheduler that repairs one against
// newly reported faculty unavailability.
package solver

import (
	"fmt"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// Problem bundles every entity a solve needs.
type Problem struct {
	Courses          []domain.Course
	Faculty          []domain.Faculty
	Classrooms       []domain.Classroom
	TimeSlots        []domain.TimeSlot
	Batches          []domain.Batch
	Unavailabilities []domain.FacultyUnavailability
}

// Validate enforces §7's InvalidInput precondition: every entity list
// must be non-empty before a solve may begin.
func (p Problem) Validate() error {
	switch {
	case len(p.Courses) == 0:
		return fmt.Errorf("no courses supplied")
	case len(p.Faculty) == 0:
		return fmt.Errorf("no faculty supplied")
	case len(p.Classrooms) == 0:
		return fmt.Errorf("no classrooms supplied")
	case len(p.TimeSlots) == 0:
		return fmt.Errorf("no time slots supplied")
	}
	return nil
}

// FacultyInDepartment returns every faculty member in dept.
func (p Problem) FacultyInDepartment(dept string) []domain.Faculty {
	var out []domain.Faculty
	for _, f := range p.Faculty {
		if f.Department == dept {
			out = append(out, f)
		}
	}
	return out
}

// EligibleFaculty returns the faculty pool a course may be taught by:
// the single named faculty member if course.FacultyID is set, else
// every faculty member in the course's department.
func (p Problem) EligibleFaculty(c domain.Course) []domain.Faculty {
	if c.FacultyID != "" {
		for _, f := range p.Faculty {
			if f.ID == c.FacultyID {
				return []domain.Faculty{f}
			}
		}
		return nil
	}
	return p.FacultyInDepartment(c.Department)
}

// Strategy selects which solving algorithm the orchestrator runs.
type Strategy string

const (
	StrategyGreedy Strategy = "Greedy"
	StrategyCSP    Strategy = "CspBacktracking"
	StrategyHybrid Strategy = "Hybrid"
)

// SolveRequest parameterises a single solve.
type SolveRequest struct {
	Strategy          Strategy `validate:"omitempty,oneof=Greedy CspBacktracking Hybrid"`
	MaxTimeSeconds     int      `validate:"omitempty,min=1"`
	Optimize          bool
	UseHeuristics     bool
	SelectedCourseIDs  []string
	SelectedFacultyIDs []string
}

// Session identifies one (course, session-index) variable.
type Session struct {
	Course     domain.Course
	SessionNum int
}

// ID returns the "<course_id>_session_<k>" identifier used across the
// conflict graph and CSP variable bookkeeping.
func (s Session) ID() string {
	return fmt.Sprintf("%s_session_%d", s.Course.ID, s.SessionNum)
}

// ExpandSessions turns each course into sessions_per_week Session
// variables, optionally filtered down to a selected subset of course
// ids (the zero value of selectedCourseIDs selects everything).
func ExpandSessions(courses []domain.Course, selectedCourseIDs []string) []Session {
	var wanted map[string]struct{}
	if len(selectedCourseIDs) > 0 {
		wanted = make(map[string]struct{}, len(selectedCourseIDs))
		for _, id := range selectedCourseIDs {
			wanted[id] = struct{}{}
		}
	}

	var sessions []Session
	for _, c := range courses {
		if wanted != nil {
			if _, ok := wanted[c.ID]; !ok {
				continue
			}
		}
		for i := 1; i <= c.SessionsPerWeek; i++ {
			sessions = append(sessions, Session{Course: c, SessionNum: i})
		}
	}
	return sessions
}
