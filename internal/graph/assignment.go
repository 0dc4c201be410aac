package graph

import (
	"strconv"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// AssignmentGraph is built over a concrete schedule's entries: one
// node per entry, with an edge whenever domain.Conflicts reports the
// pair as clashing. The optimiser colors this graph to find groupings
// of entries that can be freely reconsidered independently.
type AssignmentGraph struct {
	*Graph
	entryAt map[string]domain.ScheduleEntry
}

// BuildAssignmentGraph mirrors the original's _create_assignment_graph:
// a node per entry (indexed by position so repeated courses don't
// collide), edges wherever domain.Conflicts holds.
func BuildAssignmentGraph(schedule *domain.Schedule) *AssignmentGraph {
	ag := &AssignmentGraph{Graph: NewGraph(), entryAt: make(map[string]domain.ScheduleEntry)}

	ids := make([]string, len(schedule.Entries))
	for i, e := range schedule.Entries {
		id := e.Course.ID + "_" + strconv.Itoa(i)
		ids[i] = id
		ag.AddNode(id)
		ag.entryAt[id] = e
	}

	for i := 0; i < len(schedule.Entries); i++ {
		for j := i + 1; j < len(schedule.Entries); j++ {
			if domain.Conflicts(schedule.Entries[i], schedule.Entries[j]) {
				ag.AddEdge(ids[i], ids[j], ConflictGeneral)
			}
		}
	}
	return ag
}

// Entry returns the schedule entry a node id maps back to.
func (ag *AssignmentGraph) Entry(nodeID string) domain.ScheduleEntry {
	return ag.entryAt[nodeID]
}

// EntryGroups is ColorGroups translated back into schedule entries,
// grouped by color so callers can reconsider each color class
// independently without reintroducing conflicts within it.
func (ag *AssignmentGraph) EntryGroups() [][]domain.ScheduleEntry {
	groups := ag.ColorGroups()
	out := make([][]domain.ScheduleEntry, len(groups))
	for i, nodes := range groups {
		entries := make([]domain.ScheduleEntry, len(nodes))
		for j, id := range nodes {
			entries[j] = ag.entryAt[id]
		}
		out[i] = entries
	}
	return out
}

// Metrics summarizes the graph-theoretic shape of a schedule, mirroring
// get_schedule_metrics from the original.
type Metrics struct {
	TotalConflicts            int
	ConflictDensity           float64
	LargestConflictComponent  int
	ChromaticNumberEstimate   int
	ClusteringCoefficient     float64
}

// ScheduleMetrics computes Metrics for schedule, using conflictGraph's
// chromatic number as the course-session-level estimate (the
// assignment graph itself only reflects entries actually placed).
func ScheduleMetrics(schedule *domain.Schedule, conflictGraph *ConflictGraph) Metrics {
	ag := BuildAssignmentGraph(schedule)
	return Metrics{
		TotalConflicts:           ag.EdgeCount(),
		ConflictDensity:          ag.Density(),
		LargestConflictComponent: ag.LargestComponent(),
		ChromaticNumberEstimate:  conflictGraph.ChromaticNumberEstimate(),
		ClusteringCoefficient:    ag.AverageClusteringCoefficient(),
	}
}
