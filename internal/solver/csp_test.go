package solver

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

func TestCSPTinyFeasible(t *testing.T) {
	p := tinyFeasibleProblem()
	csp := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: true, MaxTime: 2 * time.Second})
	schedule := csp.Solve()

	require.NotNil(t, schedule)
	assert.Len(t, schedule.Entries, 2)
	assert.True(t, schedule.IsValid())
}

func TestCSPForcedConflictReturnsNil(t *testing.T) {
	slot := domain.TimeSlot{ID: "mon-9", Day: domain.Monday, Start: 540, End: 630}
	p := Problem{
		Courses: []domain.Course{
			{ID: "cs101", Code: "CS101", Department: "CS", FacultyID: "f1", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
			{ID: "math101", Code: "MATH101", Department: "CS", FacultyID: "f1", EnrolledStudents: 30, SessionsPerWeek: 1, DurationMin: 90},
		},
		Faculty: []domain.Faculty{
			{ID: "f1", Name: "Alice", Department: "CS", AvailableSlots: []domain.TimeSlot{slot}},
		},
		Classrooms: []domain.Classroom{
			{ID: "r1", Name: "Room 1", Capacity: 40, RoomType: "Regular"},
		},
		TimeSlots: []domain.TimeSlot{slot},
	}

	csp := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: true, MaxTime: 2 * time.Second})
	schedule := csp.Solve()
	assert.Nil(t, schedule, "single faculty, single room, single slot cannot satisfy both sessions")
}

func TestCSPLabRouting(t *testing.T) {
	slot := domain.TimeSlot{ID: "mon-9", Day: domain.Monday, Start: 540, End: 630}
	p := Problem{
		Courses: []domain.Course{
			{ID: "lab1", Code: "PHY-LAB", Department: "PHY", FacultyID: "f1", CourseType: domain.Lab, EnrolledStudents: 25, SessionsPerWeek: 1, DurationMin: 90},
		},
		Faculty: []domain.Faculty{
			{ID: "f1", Name: "Carol", Department: "PHY", AvailableSlots: []domain.TimeSlot{slot}},
		},
		Classrooms: []domain.Classroom{
			{ID: "reg", Name: "Regular Room", Capacity: 40, RoomType: "Regular"},
			{ID: "lab", Name: "Lab Room", Capacity: 30, RoomType: "Lab"},
		},
		TimeSlots: []domain.TimeSlot{slot},
	}

	csp := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: true, MaxTime: 2 * time.Second})
	schedule := csp.Solve()
	require.NotNil(t, schedule)
	require.Len(t, schedule.Entries, 1)
	assert.Equal(t, "lab", schedule.Entries[0].Classroom.ID)
}

func TestCSPMRVPicksSmallestDomainFirst(t *testing.T) {
	slotA := domain.TimeSlot{ID: "a", Day: domain.Monday, Start: 540, End: 630}
	narrow := domain.Course{ID: "narrow", Code: "NARROW", Department: "CS", FacultyID: "f1", EnrolledStudents: 10, SessionsPerWeek: 1, DurationMin: 90}

	var wideSlots []domain.TimeSlot
	for i := 0; i < 10; i++ {
		wideSlots = append(wideSlots, domain.TimeSlot{ID: "slot" + strconv.Itoa(i), Day: domain.Monday, Start: 540 + i*90, End: 630 + i*90})
	}

	p := Problem{
		Courses: []domain.Course{
			narrow,
			{ID: "wide1", Code: "WIDE1", Department: "CS", FacultyID: "f2", EnrolledStudents: 10, SessionsPerWeek: 1, DurationMin: 90},
			{ID: "wide2", Code: "WIDE2", Department: "CS", FacultyID: "f3", EnrolledStudents: 10, SessionsPerWeek: 1, DurationMin: 90},
		},
		Faculty: []domain.Faculty{
			{ID: "f1", Department: "CS", AvailableSlots: []domain.TimeSlot{slotA}},
			{ID: "f2", Department: "CS", AvailableSlots: wideSlots},
			{ID: "f3", Department: "CS", AvailableSlots: wideSlots},
		},
		Classrooms: []domain.Classroom{{ID: "r1", Capacity: 40, RoomType: "Regular"}},
		TimeSlots:  append([]domain.TimeSlot{slotA}, wideSlots...),
	}

	csp := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: true, MaxTime: 5 * time.Second})
	schedule := csp.Solve()
	require.NotNil(t, schedule)
	assert.Len(t, schedule.Entries, 3)
	assert.Equal(t, 3, csp.Stats().MaxDepth)
}

func TestCSPHeuristicsSemanticEquivalence(t *testing.T) {
	p := tinyFeasibleProblem()

	withHeuristics := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: true, MaxTime: 2 * time.Second})
	scheduleWithHeuristics := withHeuristics.Solve()

	naive := NewCSP(p, SolveRequest{}, CSPOptions{UseHeuristics: false, MaxTime: 2 * time.Second})
	scheduleNaive := naive.Solve()

	assert.Equal(t, scheduleWithHeuristics != nil, scheduleNaive != nil, "MRV/LCV ordering only changes performance, not satisfiability")
}
