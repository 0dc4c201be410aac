package solver

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// cspVariable is one CSP variable: a session whose domain is the
// current list of feasible (slot, room, faculty) tuples.
type cspVariable struct {
	session Session
	domain  []Candidate
}

// CSPStats reports the search statistics §4.3 requires callers to
// expose.
type CSPStats struct {
	NodesExplored   int
	MaxDepth        int
	TotalVariables  int
	MeanDomainSize  float64
}

// CSPOptions configures a single CSP.Solve call.
type CSPOptions struct {
	UseHeuristics bool
	MaxTime       time.Duration
	// LCVCap bounds how many domain values get the full LCV scoring
	// pass before falling back to original domain order, guarding
	// against the method's inherent quadratic blow-up on large
	// instances. Zero means unbounded.
	LCVCap int
	// Rand drives the no-heuristics value shuffle; nil uses a
	// process-default source. Tests inject a seeded source for
	// reproducibility.
	Rand *rand.Rand
}

// CSP is one run of the backtracking solver over Problem.
type CSP struct {
	problem   Problem
	opts      CSPOptions
	variables []*cspVariable
	deadline  time.Time
	stats     CSPStats
}

// NewCSP precomputes each session's domain from the unary constraints
// (faculty availability, room compatibility, slot duration), matching
// §4.3's domain initialization.
func NewCSP(p Problem, req SolveRequest, opts CSPOptions) *CSP {
	sessions := ExpandSessions(p.Courses, req.SelectedCourseIDs)
	vars := make([]*cspVariable, 0, len(sessions))
	for _, s := range sessions {
		vars = append(vars, &cspVariable{session: s, domain: feasibleCandidates(p, s)})
	}
	return &CSP{problem: p, opts: opts, variables: vars}
}

// Stats returns the statistics from the most recent Solve call.
func (c *CSP) Stats() CSPStats { return c.stats }

// assignment maps a variable index to its chosen candidate.
type assignment map[int]Candidate

// Solve runs backtracking search and returns the resulting schedule,
// or nil if the deadline was crossed or the space was exhausted
// (§4.3/§7's Timeout/NoSolution cases, disambiguated by the caller
// comparing elapsed time against MaxTime).
func (c *CSP) Solve() *domain.Schedule {
	c.deadline = time.Now().Add(c.opts.MaxTime)
	c.stats = CSPStats{TotalVariables: len(c.variables)}

	var totalDomain int
	for _, v := range c.variables {
		totalDomain += len(v.domain)
	}
	if len(c.variables) > 0 {
		c.stats.MeanDomainSize = float64(totalDomain) / float64(len(c.variables))
	}

	result := c.backtrack(assignment{}, 0)
	if result == nil {
		return nil
	}
	return c.toSchedule(result)
}

func (c *CSP) backtrack(assign assignment, depth int) assignment {
	if time.Now().After(c.deadline) {
		return nil
	}

	c.stats.NodesExplored++
	if depth > c.stats.MaxDepth {
		c.stats.MaxDepth = depth
	}

	if len(assign) == len(c.variables) {
		if c.consistent(assign) {
			return assign
		}
		return nil
	}

	varIdx := c.selectVariable(assign)
	if varIdx < 0 {
		return nil
	}

	values := c.orderValues(varIdx, assign)
	for _, value := range values {
		assign[varIdx] = value
		if c.consistent(assign) {
			undo := c.forwardCheck(varIdx, value, assign)
			result := c.backtrack(assign, depth+1)
			if result != nil {
				return result
			}
			c.restoreDomains(undo)
		}
		delete(assign, varIdx)
	}
	return nil
}

// selectVariable implements MRV (smallest current domain, ties broken
// by lowest variable index i.e. insertion order) when heuristics are
// enabled, else the first unassigned variable.
func (c *CSP) selectVariable(assign assignment) int {
	if !c.opts.UseHeuristics {
		for i := range c.variables {
			if _, ok := assign[i]; !ok {
				return i
			}
		}
		return -1
	}

	best := -1
	bestSize := -1
	for i, v := range c.variables {
		if _, ok := assign[i]; ok {
			continue
		}
		if best < 0 || len(v.domain) < bestSize {
			best = i
			bestSize = len(v.domain)
		}
	}
	return best
}

// orderValues implements LCV when heuristics are enabled (capped per
// §9's design note), otherwise a shuffled order driven by opts.Rand.
func (c *CSP) orderValues(varIdx int, assign assignment) []Candidate {
	values := append([]Candidate(nil), c.variables[varIdx].domain...)

	if !c.opts.UseHeuristics {
		r := c.opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
		return values
	}

	cap := c.opts.LCVCap
	if cap <= 0 || cap > len(values) {
		cap = len(values)
	}
	scored := values[:cap]
	rest := values[cap:]

	eliminated := make([]int, len(scored))
	order := make([]int, len(scored))
	for i, val := range scored {
		eliminated[i] = c.countEliminated(varIdx, val, assign)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return eliminated[order[a]] < eliminated[order[b]] })

	ordered := make([]Candidate, 0, len(values))
	for _, i := range order {
		ordered = append(ordered, scored[i])
	}
	return append(ordered, rest...)
}

func (c *CSP) countEliminated(varIdx int, value Candidate, assign assignment) int {
	count := 0
	test := assignment{}
	for k, v := range assign {
		test[k] = v
	}
	test[varIdx] = value

	for i, other := range c.variables {
		if i == varIdx {
			continue
		}
		if _, ok := assign[i]; ok {
			continue
		}
		for _, otherVal := range other.domain {
			test[i] = otherVal
			if !c.consistent(test) {
				count++
			}
			delete(test, i)
		}
	}
	return count
}

// forwardCheck prunes the domains of every other unassigned variable,
// dropping tuples that would conflict with (varIdx, value). Returns an
// undo log of each pruned variable's prior domain.
func (c *CSP) forwardCheck(varIdx int, value Candidate, assign assignment) map[int][]Candidate {
	undo := map[int][]Candidate{}

	for i, other := range c.variables {
		if i == varIdx {
			continue
		}
		if _, ok := assign[i]; ok {
			continue
		}

		valueEntry := domain.ScheduleEntry{Course: c.variables[varIdx].session.Course, Faculty: value.Faculty, Classroom: value.Classroom, TimeSlot: value.Slot}
		otherCourse := other.session.Course

		pruned := other.domain[:0:0]
		changed := false
		for _, otherVal := range other.domain {
			otherEntry := domain.ScheduleEntry{Course: otherCourse, Faculty: otherVal.Faculty, Classroom: otherVal.Classroom, TimeSlot: otherVal.Slot}
			if domain.Conflicts(valueEntry, otherEntry) {
				changed = true
				continue
			}
			pruned = append(pruned, otherVal)
		}
		if changed {
			undo[i] = other.domain
			other.domain = pruned
		}
	}
	return undo
}

func (c *CSP) restoreDomains(undo map[int][]Candidate) {
	for i, dom := range undo {
		c.variables[i].domain = dom
	}
}

// consistent checks the three constraint classes pairwise over every
// assigned variable: no conflicts, faculty availability, room
// compatibility. The latter two are redundant with domain
// construction but are re-checked here to match §4.3's constraint
// list exactly. The pairwise check reuses domain.Conflicts so the
// search models exactly the predicate Schedule.AddEntry enforces.
func (c *CSP) consistent(assign assignment) bool {
	indices := make([]int, 0, len(assign))
	for i := range assign {
		indices = append(indices, i)
	}
	for i := 0; i < len(indices); i++ {
		vi := indices[i]
		ci := assign[vi]
		course := c.variables[vi].session.Course
		if !domain.RoomCompatible(course, ci.Classroom) {
			return false
		}
		if !ci.Faculty.IsAvailable(ci.Slot) {
			return false
		}
		entryI := domain.ScheduleEntry{Course: course, Faculty: ci.Faculty, Classroom: ci.Classroom, TimeSlot: ci.Slot}
		for j := i + 1; j < len(indices); j++ {
			vj := indices[j]
			cj := assign[vj]
			entryJ := domain.ScheduleEntry{Course: c.variables[vj].session.Course, Faculty: cj.Faculty, Classroom: cj.Classroom, TimeSlot: cj.Slot}
			if domain.Conflicts(entryI, entryJ) {
				return false
			}
		}
	}
	return true
}

func (c *CSP) toSchedule(assign assignment) *domain.Schedule {
	schedule := domain.NewSchedule()
	for i, cand := range assign {
		entry := domain.ScheduleEntry{
			Course:    c.variables[i].session.Course,
			Faculty:   cand.Faculty,
			Classroom: cand.Classroom,
			TimeSlot:  cand.Slot,
		}
		schedule.AddEntry(entry)
	}
	schedule.CalculateOptimizationScore()
	return schedule
}
