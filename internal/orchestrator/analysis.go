package orchestrator

import (
	"sort"
	"strconv"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/graph"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
)

// FacultyWorkload summarises one faculty member's load in a schedule.
type FacultyWorkload struct {
	Hours   float64
	Courses []string
}

// WorkloadAnalysis is §4.7/§6's faculty_workload block.
type WorkloadAnalysis struct {
	ByFaculty    map[string]FacultyWorkload
	AverageHours float64
	MaxHours     float64
	MinHours     float64
	Balanced     bool
}

// RoomUsage summarises one classroom's usage in a schedule.
type RoomUsage struct {
	Name     string
	Sessions int
	Courses  []string
}

// UtilizationAnalysis is §6's classroom_utilisation block.
type UtilizationAnalysis struct {
	ByRoom             map[string]RoomUsage
	RoomHours          map[string]float64
	UtilizationRates   map[string]float64
	AverageUtilization float64
}

// TimeDistribution is §6's time_distribution block.
type TimeDistribution struct {
	BySlot      map[string]int
	ByDay       map[domain.DayOfWeek]int
	PeakTimes   []string
	Balanced    bool
}

// Analysis is §6's analysis facet of SolveResult.
type Analysis struct {
	BasicStats              domain.Summary
	FacultyWorkload         WorkloadAnalysis
	ClassroomUtilization    UtilizationAnalysis
	TimeDistribution        TimeDistribution
	GraphMetrics            graph.Metrics
	ImprovementSuggestions  []string
}

// Analyze implements analyze_schedule: basic stats, per-faculty
// workload, per-room utilisation, time-slot distribution, graph
// metrics, and improvement suggestions.
func Analyze(p solver.Problem, schedule *domain.Schedule) Analysis {
	conflictGraph := graph.BuildConflictGraph(p.Courses)
	metrics := graph.ScheduleMetrics(schedule, conflictGraph)

	analysis := Analysis{
		BasicStats:           schedule.GetSummary(),
		FacultyWorkload:      analyzeFacultyWorkload(schedule),
		ClassroomUtilization: analyzeClassroomUtilization(p, schedule),
		TimeDistribution:     analyzeTimeDistribution(schedule),
		GraphMetrics:         metrics,
	}
	analysis.ImprovementSuggestions = suggestImprovements(schedule, metrics)
	return analysis
}

func analyzeFacultyWorkload(schedule *domain.Schedule) WorkloadAnalysis {
	byFaculty := map[string]FacultyWorkload{}
	for _, e := range schedule.Entries {
		w := byFaculty[e.Faculty.ID]
		w.Hours += float64(e.Course.DurationMin) / 60
		w.Courses = append(w.Courses, e.Course.Code)
		byFaculty[e.Faculty.ID] = w
	}

	var avg, max, min float64
	if len(byFaculty) > 0 {
		var sum float64
		first := true
		for _, w := range byFaculty {
			sum += w.Hours
			if first || w.Hours > max {
				max = w.Hours
			}
			if first || w.Hours < min {
				min = w.Hours
			}
			first = false
		}
		avg = sum / float64(len(byFaculty))
	}

	return WorkloadAnalysis{
		ByFaculty:    byFaculty,
		AverageHours: avg,
		MaxHours:     max,
		MinHours:     min,
		Balanced:     max-min <= 5,
	}
}

func analyzeClassroomUtilization(p solver.Problem, schedule *domain.Schedule) UtilizationAnalysis {
	byRoom := map[string]RoomUsage{}
	roomHours := map[string]float64{}

	for _, e := range schedule.Entries {
		usage := byRoom[e.Classroom.ID]
		usage.Name = e.Classroom.Name
		usage.Sessions++
		usage.Courses = append(usage.Courses, e.Course.Code)
		byRoom[e.Classroom.ID] = usage
		roomHours[e.Classroom.ID] += float64(e.TimeSlot.Duration()) / 60
	}

	var totalAvailableHours float64
	for _, slot := range p.TimeSlots {
		totalAvailableHours += float64(slot.Duration()) / 60
	}

	rates := map[string]float64{}
	var rateSum float64
	for roomID, hours := range roomHours {
		if totalAvailableHours > 0 {
			rates[roomID] = hours / totalAvailableHours
		}
		rateSum += rates[roomID]
	}

	avg := 0.0
	if len(rates) > 0 {
		avg = rateSum / float64(len(rates))
	}

	return UtilizationAnalysis{
		ByRoom:             byRoom,
		RoomHours:          roomHours,
		UtilizationRates:   rates,
		AverageUtilization: avg,
	}
}

func analyzeTimeDistribution(schedule *domain.Schedule) TimeDistribution {
	bySlot := map[string]int{}
	byDay := map[domain.DayOfWeek]int{}

	for _, e := range schedule.Entries {
		key := string(e.TimeSlot.Day) + " " + formatClock(e.TimeSlot.Start) + "-" + formatClock(e.TimeSlot.End)
		bySlot[key]++
		byDay[e.TimeSlot.Day]++
	}

	return TimeDistribution{
		BySlot:    bySlot,
		ByDay:     byDay,
		PeakTimes: findPeakTimes(bySlot),
		Balanced:  checkTimeBalance(byDay),
	}
}

// formatClock renders minutes-since-midnight as a zero-padded "HH:MM"
// string, matching pkg/export's formatClock idiom.
func formatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	hs := strconv.Itoa(h)
	if h < 10 {
		hs = "0" + hs
	}
	ms := strconv.Itoa(m)
	if m < 10 {
		ms = "0" + ms
	}
	return hs + ":" + ms
}

func findPeakTimes(bySlot map[string]int) []string {
	if len(bySlot) == 0 {
		return nil
	}
	max := 0
	for _, count := range bySlot {
		if count > max {
			max = count
		}
	}
	var peaks []string
	for slot, count := range bySlot {
		if count == max {
			peaks = append(peaks, slot)
		}
	}
	sort.Strings(peaks)
	return peaks
}

func checkTimeBalance(byDay map[domain.DayOfWeek]int) bool {
	if len(byDay) == 0 {
		return true
	}
	var sum float64
	for _, v := range byDay {
		sum += float64(v)
	}
	avg := sum / float64(len(byDay))
	if avg == 0 {
		return true
	}
	for _, v := range byDay {
		diff := float64(v) - avg
		if diff < 0 {
			diff = -diff
		}
		if diff/avg > 0.2 {
			return false
		}
	}
	return true
}

func suggestImprovements(schedule *domain.Schedule, metrics graph.Metrics) []string {
	var suggestions []string

	if metrics.TotalConflicts > 0 {
		suggestions = append(suggestions, "schedule has unresolved conflicts requiring manual review")
	}
	if metrics.ConflictDensity > 0.5 {
		suggestions = append(suggestions, "high conflict density - consider redistributing courses across time slots")
	}
	if metrics.LargestConflictComponent > 5 {
		suggestions = append(suggestions, "large conflict cluster detected - may need manual intervention")
	}
	if schedule.RoomUtilisation() < 0.6 {
		suggestions = append(suggestions, "low room utilisation - consider consolidating courses")
	}

	return suggestions
}
