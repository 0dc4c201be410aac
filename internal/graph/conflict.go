// Package graph builds conflict graphs over course sessions and
// schedule entries and colors them to find non-conflicting groupings,
// mirroring the graph-theoretic pass the greedy and CSP solvers feed
// their output through before the adaptive re-scheduler runs.
package graph

import (
	"sort"
	"strconv"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// ConflictType classifies why two course sessions might clash.
type ConflictType string

const (
	ConflictFaculty    ConflictType = "faculty"
	ConflictDepartment ConflictType = "department"
	ConflictResource   ConflictType = "resource"
	ConflictGeneral    ConflictType = "general"
)

// Graph is an undirected adjacency-set graph keyed by node id.
type Graph struct {
	Nodes map[string]struct{}
	edges map[string]map[string]ConflictType
	order []string // insertion order, for deterministic coloring
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]struct{}),
		edges: make(map[string]map[string]ConflictType),
	}
}

// AddNode registers id if not already present.
func (g *Graph) AddNode(id string) {
	if _, ok := g.Nodes[id]; ok {
		return
	}
	g.Nodes[id] = struct{}{}
	g.edges[id] = make(map[string]ConflictType)
	g.order = append(g.order, id)
}

// AddEdge records a conflict edge between a and b with the given type.
// Both endpoints must already be registered.
func (g *Graph) AddEdge(a, b string, t ConflictType) {
	g.edges[a][b] = t
	g.edges[b][a] = t
}

// Neighbors returns id's neighbor ids, sorted.
func (g *Graph) Neighbors(id string) []string {
	neighbors := make([]string, 0, len(g.edges[id]))
	for n := range g.edges[id] {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) int {
	return len(g.edges[id])
}

// EdgeCount returns the total number of distinct edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, adj := range g.edges {
		total += len(adj)
	}
	return total / 2
}

// Density returns the ratio of existing edges to the maximum possible
// edge count on |Nodes| vertices.
func (g *Graph) Density() float64 {
	n := len(g.Nodes)
	if n < 2 {
		return 0
	}
	maxEdges := float64(n*(n-1)) / 2
	return float64(g.EdgeCount()) / maxEdges
}

// ConflictGraph is built over course sessions: one node per
// (course, session-number) pair, with edges wherever two courses could
// plausibly clash regardless of the time slots ultimately chosen.
type ConflictGraph struct {
	*Graph
	sessionCourse map[string]domain.Course
}

// BuildConflictGraph implements the original's conflict-graph
// construction: a node per course session, and an edge whenever two
// sessions' owning courses share a faculty member, share a department,
// or are both Lab courses with overlapping required equipment.
func BuildConflictGraph(courses []domain.Course) *ConflictGraph {
	cg := &ConflictGraph{Graph: NewGraph(), sessionCourse: make(map[string]domain.Course)}

	type session struct {
		id     string
		course domain.Course
	}
	var sessions []session
	for _, c := range courses {
		for i := 1; i <= c.SessionsPerWeek; i++ {
			id := sessionID(c.ID, i)
			sessions = append(sessions, session{id: id, course: c})
			cg.AddNode(id)
			cg.sessionCourse[id] = c
		}
	}

	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			c1, c2 := sessions[i].course, sessions[j].course
			if t, conflict := potentialConflict(c1, c2); conflict {
				cg.AddEdge(sessions[i].id, sessions[j].id, t)
			}
		}
	}
	return cg
}

func sessionID(courseID string, session int) string {
	return courseID + "_session_" + strconv.Itoa(session)
}

func potentialConflict(c1, c2 domain.Course) (ConflictType, bool) {
	if c1.FacultyID != "" && c1.FacultyID == c2.FacultyID {
		return ConflictFaculty, true
	}
	if c1.Department == c2.Department {
		return ConflictDepartment, true
	}
	if c1.CourseType == domain.Lab && c2.CourseType == domain.Lab && sharesEquipment(c1, c2) {
		return ConflictResource, true
	}
	return ConflictGeneral, false
}

func sharesEquipment(c1, c2 domain.Course) bool {
	for eq := range c1.RequiredEquipment {
		if _, ok := c2.RequiredEquipment[eq]; ok {
			return true
		}
	}
	return false
}

// FindCliques enumerates maximal cliques via Bron-Kerbosch with pivoting.
func (g *Graph) FindCliques() [][]string {
	var cliques [][]string
	r := map[string]struct{}{}
	p := make(map[string]struct{}, len(g.Nodes))
	for n := range g.Nodes {
		p[n] = struct{}{}
	}
	x := map[string]struct{}{}
	bronKerbosch(g, r, p, x, &cliques)
	return cliques
}

func bronKerbosch(g *Graph, r, p, x map[string]struct{}, cliques *[][]string) {
	if len(p) == 0 && len(x) == 0 {
		clique := make([]string, 0, len(r))
		for n := range r {
			clique = append(clique, n)
		}
		sort.Strings(clique)
		*cliques = append(*cliques, clique)
		return
	}

	pivot := choosePivot(p, x)
	pivotNeighbors := map[string]struct{}{}
	if pivot != "" {
		for _, n := range g.Neighbors(pivot) {
			pivotNeighbors[n] = struct{}{}
		}
	}

	candidates := make([]string, 0, len(p))
	for v := range p {
		if _, skip := pivotNeighbors[v]; !skip {
			candidates = append(candidates, v)
		}
	}
	sort.Strings(candidates)

	for _, v := range candidates {
		neighbors := map[string]struct{}{}
		for _, n := range g.Neighbors(v) {
			neighbors[n] = struct{}{}
		}

		rNext := copySet(r)
		rNext[v] = struct{}{}
		pNext := intersect(p, neighbors)
		xNext := intersect(x, neighbors)

		bronKerbosch(g, rNext, pNext, xNext, cliques)

		delete(p, v)
		x[v] = struct{}{}
	}
}

func choosePivot(p, x map[string]struct{}) string {
	for v := range p {
		return v
	}
	for v := range x {
		return v
	}
	return ""
}

func copySet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			out[k] = struct{}{}
		}
	}
	return out
}
