package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

func TestGreedyColorNoSharedColorsAmongNeighbors(t *testing.T) {
	g := NewGraph()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n)
	}
	g.AddEdge("a", "b", ConflictGeneral)
	g.AddEdge("b", "c", ConflictGeneral)

	colors := g.GreedyColor()
	assert.NotEqual(t, colors["a"], colors["b"])
	assert.NotEqual(t, colors["b"], colors["c"])
}

func TestChromaticNumberEstimateTriangle(t *testing.T) {
	g := NewGraph()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n)
	}
	g.AddEdge("a", "b", ConflictGeneral)
	g.AddEdge("b", "c", ConflictGeneral)
	g.AddEdge("a", "c", ConflictGeneral)

	assert.Equal(t, 3, g.ChromaticNumberEstimate())
}

func TestColorGroupsCoverAllNodes(t *testing.T) {
	g := NewGraph()
	for _, n := range []string{"a", "b", "c", "d"} {
		g.AddNode(n)
	}
	g.AddEdge("a", "b", ConflictGeneral)

	groups := g.ColorGroups()
	total := 0
	for _, grp := range groups {
		total += len(grp)
	}
	assert.Equal(t, 4, total)
}

func TestBuildAssignmentGraphFromSchedule(t *testing.T) {
	slot1 := domain.TimeSlot{ID: "s1", Day: domain.Monday, Start: 540, End: 630}
	slot2 := domain.TimeSlot{ID: "s2", Day: domain.Monday, Start: 570, End: 660}

	e1 := domain.ScheduleEntry{
		Course:    domain.Course{ID: "c1"},
		Faculty:   domain.Faculty{ID: "f1"},
		Classroom: domain.Classroom{ID: "r1"},
		TimeSlot:  slot1,
	}
	e2 := domain.ScheduleEntry{
		Course:    domain.Course{ID: "c2"},
		Faculty:   domain.Faculty{ID: "f1"},
		Classroom: domain.Classroom{ID: "r2"},
		TimeSlot:  slot2,
	}
	sched := domain.NewSchedule()
	sched.Entries = []domain.ScheduleEntry{e1, e2}

	ag := BuildAssignmentGraph(sched)
	assert.Equal(t, 1, ag.EdgeCount(), "same faculty overlapping slots conflict")

	groups := ag.EntryGroups()
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 2, total)
}
