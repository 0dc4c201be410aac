package solver

import (
	"sort"
	"strconv"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

var freePeriodWindows = [][2]int{
	{11 * 60, 12 * 60},
	{13 * 60, 14 * 60},
	{15 * 60, 16 * 60},
}

var breakStartHours = map[int]struct{}{10: {}, 12: {}, 15: {}}

// FreePeriodPool derives the free-period slot pool (§4.5 step 1): one
// slot per working day per fixed clock window.
func FreePeriodPool(workingDays []domain.DayOfWeek) []domain.TimeSlot {
	var pool []domain.TimeSlot
	for _, day := range workingDays {
		for _, w := range freePeriodWindows {
			pool = append(pool, domain.TimeSlot{
				ID:    "free_" + string(day) + "_" + strconv.Itoa(w[0]),
				Day:   day,
				Start: w[0],
				End:   w[1],
			})
		}
	}
	return pool
}

func isInPool(slot domain.TimeSlot, pool []domain.TimeSlot) bool {
	for _, p := range pool {
		if p.Day == slot.Day && p.Start == slot.Start && p.End == slot.End {
			return true
		}
	}
	return false
}

func isBreakTime(slot domain.TimeSlot) bool {
	_, ok := breakStartHours[slot.StartHour()]
	return ok
}

// SubstitutionMatrix maps a faculty id to the ordered list of other
// faculty in the same department eligible to substitute for them
// (§4.5 step 2).
type SubstitutionMatrix map[string][]domain.Faculty

// BuildSubstitutionMatrix constructs the per-faculty substitute list.
func BuildSubstitutionMatrix(faculty []domain.Faculty) SubstitutionMatrix {
	matrix := make(SubstitutionMatrix, len(faculty))
	for _, f := range faculty {
		var subs []domain.Faculty
		for _, other := range faculty {
			if other.ID != f.ID && other.Department == f.Department {
				subs = append(subs, other)
			}
		}
		matrix[f.ID] = subs
	}
	return matrix
}

// RescheduleOption is one candidate replacement for a displaced entry.
type RescheduleOption struct {
	Original  domain.ScheduleEntry
	NewSlot   domain.TimeSlot
	NewRoom   domain.Classroom
	NewFac    domain.Faculty
	Score     float64
}

func (o RescheduleOption) newEntry() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		Course:    o.Original.Course,
		Faculty:   o.NewFac,
		Classroom: o.NewRoom,
		TimeSlot:  o.NewSlot,
	}
}

// RescheduleStats tallies the adaptive re-scheduler's actions.
type RescheduleStats struct {
	Rescheduled  int
	Substituted  int
	FreePeriods  int
	ByReason     map[domain.UnavailabilityReason]int
}

// Reschedule implements §4.5: given a valid schedule and a set of
// faculty unavailabilities, repair every conflict while minimising
// disruption per the feasibility scoring rubric.
func Reschedule(p Problem, schedule *domain.Schedule, unavailabilities []domain.FacultyUnavailability, freePeriods []domain.TimeSlot, matrix SubstitutionMatrix) (*domain.Schedule, RescheduleStats) {
	stats := RescheduleStats{ByReason: make(map[domain.UnavailabilityReason]int)}

	sorted := append([]domain.FacultyUnavailability(nil), unavailabilities...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority > sorted[j].Priority })

	for _, u := range sorted {
		affected := findAffectedEntries(schedule, u)
		for _, entry := range affected {
			options := generateOptions(p, schedule, entry, u, freePeriods, matrix)
			if len(options) == 0 {
				continue
			}
			best := options[0]
			for _, opt := range options[1:] {
				if opt.Score > best.Score {
					best = opt
				}
			}
			if applyOption(schedule, best) {
				stats.Rescheduled++
				stats.ByReason[u.Reason]++
				if best.NewFac.ID != best.Original.Faculty.ID {
					stats.Substituted++
				}
				if isInPool(best.NewSlot, freePeriods) {
					stats.FreePeriods++
				}
			}
		}
	}

	schedule.CalculateOptimizationScore()
	return schedule, stats
}

func findAffectedEntries(schedule *domain.Schedule, u domain.FacultyUnavailability) []domain.ScheduleEntry {
	var affected []domain.ScheduleEntry
	for _, e := range schedule.Entries {
		if u.AffectsEntry(e) {
			affected = append(affected, e)
		}
	}
	return affected
}

// generateOptions produces every candidate option from the four
// generators in option-generation order, each scored.
func generateOptions(p Problem, schedule *domain.Schedule, entry domain.ScheduleEntry, u domain.FacultyUnavailability, freePeriods []domain.TimeSlot, matrix SubstitutionMatrix) []RescheduleOption {
	var options []RescheduleOption

	// 1. Free period, same faculty, same room.
	for _, slot := range freePeriods {
		if u.ConflictsWithSlot(slot) || !entry.Faculty.IsAvailable(slot) {
			continue
		}
		candidate := domain.ScheduleEntry{Course: entry.Course, Faculty: entry.Faculty, Classroom: entry.Classroom, TimeSlot: slot}
		if conflictsExcluding(schedule, candidate, entry) {
			continue
		}
		options = append(options, scoreOption(RescheduleOption{Original: entry, NewSlot: slot, NewRoom: entry.Classroom, NewFac: entry.Faculty}, freePeriods))
	}

	// 2. Time shift, same faculty, same room.
	for _, slot := range p.TimeSlots {
		if slot.ID == entry.TimeSlot.ID || u.ConflictsWithSlot(slot) {
			continue
		}
		if !entry.Faculty.IsAvailable(slot) {
			continue
		}
		candidate := domain.ScheduleEntry{Course: entry.Course, Faculty: entry.Faculty, Classroom: entry.Classroom, TimeSlot: slot}
		if conflictsExcluding(schedule, candidate, entry) {
			continue
		}
		options = append(options, scoreOption(RescheduleOption{Original: entry, NewSlot: slot, NewRoom: entry.Classroom, NewFac: entry.Faculty}, freePeriods))
	}

	// 3. Substitution, same slot and room.
	for _, sub := range matrix[entry.Faculty.ID] {
		if !sub.IsAvailable(entry.TimeSlot) {
			continue
		}
		candidate := domain.ScheduleEntry{Course: entry.Course, Faculty: sub, Classroom: entry.Classroom, TimeSlot: entry.TimeSlot}
		if conflictsExcluding(schedule, candidate, entry) {
			continue
		}
		options = append(options, scoreOption(RescheduleOption{Original: entry, NewSlot: entry.TimeSlot, NewRoom: entry.Classroom, NewFac: sub}, freePeriods))
	}

	// 4. Time + room change, original faculty.
	for _, slot := range p.TimeSlots {
		if slot.ID == entry.TimeSlot.ID || u.ConflictsWithSlot(slot) {
			continue
		}
		if !entry.Faculty.IsAvailable(slot) {
			continue
		}
		for _, room := range p.Classrooms {
			if !domain.RoomCompatible(entry.Course, room) {
				continue
			}
			candidate := domain.ScheduleEntry{Course: entry.Course, Faculty: entry.Faculty, Classroom: room, TimeSlot: slot}
			if conflictsExcluding(schedule, candidate, entry) {
				continue
			}
			options = append(options, scoreOption(RescheduleOption{Original: entry, NewSlot: slot, NewRoom: room, NewFac: entry.Faculty}, freePeriods))
		}
	}

	return options
}

func conflictsExcluding(schedule *domain.Schedule, candidate, original domain.ScheduleEntry) bool {
	for _, existing := range schedule.Entries {
		if entrySameIdentity(existing, original) {
			continue
		}
		if domain.Conflicts(candidate, existing) {
			return true
		}
	}
	return false
}

func entrySameIdentity(a, b domain.ScheduleEntry) bool {
	return a.Course.ID == b.Course.ID && a.Faculty.ID == b.Faculty.ID && a.Classroom.ID == b.Classroom.ID && a.TimeSlot.ID == b.TimeSlot.ID
}

// scoreOption implements the §4.5 feasibility scoring table, base 100
// clamped to >= 0.
func scoreOption(o RescheduleOption, freePeriods []domain.TimeSlot) RescheduleOption {
	score := 100.0

	if o.NewSlot.ID != o.Original.TimeSlot.ID {
		score -= 10
	}
	if o.NewRoom.ID != o.Original.Classroom.ID {
		score -= 5
	}
	if o.NewFac.ID != o.Original.Faculty.ID {
		score -= 20
	}
	if isInPool(o.NewSlot, freePeriods) {
		score += 15
	}

	hour := o.NewSlot.StartHour()
	switch {
	case hour >= 9 && hour <= 11:
		score += 5
	case hour >= 16:
		score -= 10
	}

	if isBreakTime(o.NewSlot) {
		score -= 15
	}

	if score < 0 {
		score = 0
	}
	o.Score = score
	return o
}

// applyOption removes the original entry and inserts the replacement,
// matching §4.5 step 3's "apply" rule: if the insertion fails the
// option is abandoned and the schedule is left as-is.
func applyOption(schedule *domain.Schedule, option RescheduleOption) bool {
	if !schedule.RemoveEntry(option.Original) {
		return false
	}
	newEntry := option.newEntry()
	if schedule.AddEntry(newEntry) {
		return true
	}
	schedule.AddEntry(option.Original)
	return false
}
