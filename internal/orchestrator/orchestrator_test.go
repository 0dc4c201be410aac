package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
)

func tinyProblem() solver.Problem {
	slot1 := domain.TimeSlot{ID: "mon-9", Day: domain.Monday, Start: 540, End: 630}
	slot2 := domain.TimeSlot{ID: "mon-1030", Day: domain.Monday, Start: 630, End: 720}

	return solver.Problem{
		Courses: []domain.Course{
			{ID: "cs101", Code: "CS101", Department: "CS", FacultyID: "f1", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
			{ID: "math101", Code: "MATH101", Department: "MATH", FacultyID: "f2", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
		},
		Faculty: []domain.Faculty{
			{ID: "f1", Name: "Alice", Department: "CS", AvailableSlots: []domain.TimeSlot{slot1, slot2}},
			{ID: "f2", Name: "Bob", Department: "MATH", AvailableSlots: []domain.TimeSlot{slot1, slot2}},
		},
		Classrooms: []domain.Classroom{
			{ID: "r1", Name: "Room 1", Capacity: 40, RoomType: "Regular"},
			{ID: "r2", Name: "Room 2", Capacity: 40, RoomType: "Regular"},
		},
		TimeSlots: []domain.TimeSlot{slot1, slot2},
	}
}

func TestChooseStrategySmallInstancePicksGreedy(t *testing.T) {
	p := tinyProblem()
	assert.Equal(t, solver.StrategyGreedy, ChooseStrategy(p))
}

func TestSolveRejectsEmptyProblem(t *testing.T) {
	o := New(nil)
	_, err := o.Solve(solver.Problem{}, solver.SolveRequest{})
	assert.Error(t, err)
}

func TestSolveGreedyProducesValidResult(t *testing.T) {
	o := New(nil)
	result, err := o.Solve(tinyProblem(), solver.SolveRequest{Strategy: solver.StrategyGreedy})

	require.NoError(t, err)
	require.NotNil(t, result.Schedule)
	assert.True(t, result.Statistics.IsValid)
	assert.Equal(t, 2, result.Statistics.TotalEntries)
	assert.Equal(t, solver.StrategyGreedy, result.Statistics.Strategy)
}

func TestSolveCSPExposesNodeStatistics(t *testing.T) {
	o := New(nil)
	result, err := o.Solve(tinyProblem(), solver.SolveRequest{Strategy: solver.StrategyCSP, MaxTimeSeconds: 5})

	require.NoError(t, err)
	require.NotNil(t, result.Schedule)
	require.NotNil(t, result.Statistics.NodesExplored)
	assert.Greater(t, *result.Statistics.NodesExplored, 0)
}

func TestSolveHybridFallsBackToGreedyOnCSPFailure(t *testing.T) {
	slot := domain.TimeSlot{ID: "mon-9", Day: domain.Monday, Start: 540, End: 630}
	p := solver.Problem{
		Courses: []domain.Course{
			{ID: "cs101", Code: "CS101", Department: "CS", FacultyID: "f1", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
			{ID: "math101", Code: "MATH101", Department: "CS", FacultyID: "f1", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
		},
		Faculty: []domain.Faculty{
			{ID: "f1", Department: "CS", AvailableSlots: []domain.TimeSlot{slot}},
		},
		Classrooms: []domain.Classroom{{ID: "r1", Capacity: 40, RoomType: "Regular"}},
		TimeSlots:  []domain.TimeSlot{slot},
	}

	o := New(nil)
	result, err := o.Solve(p, solver.SolveRequest{Strategy: solver.StrategyHybrid, MaxTimeSeconds: 2})

	require.NoError(t, err)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, solver.StrategyHybrid, result.Statistics.Strategy)
	assert.Len(t, result.Schedule.Entries, 1, "greedy fallback still places one session")
}

func TestAnalyzeProducesNonNilSections(t *testing.T) {
	p := tinyProblem()
	schedule := solver.Greedy(p, solver.SolveRequest{})
	analysis := Analyze(p, schedule)

	assert.NotEmpty(t, analysis.FacultyWorkload.ByFaculty)
	assert.NotEmpty(t, analysis.ClassroomUtilization.ByRoom)
	assert.NotEmpty(t, analysis.TimeDistribution.BySlot)
}
