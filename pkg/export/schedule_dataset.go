package export

import (
	"sort"
	"strconv"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

// ScheduleDataset flattens a Schedule into the Headers/Rows shape the
// CSV and PDF exporters render, one row per ScheduleEntry, sorted by
// day and start time so the output reads like a weekly timetable.
func ScheduleDataset(schedule *domain.Schedule) Dataset {
	headers := []string{"Day", "Start", "End", "Course", "Faculty", "Classroom", "Batch"}

	entries := make([]domain.ScheduleEntry, len(schedule.Entries))
	copy(entries, schedule.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TimeSlot.Day != entries[j].TimeSlot.Day {
			return dayOrdinal(entries[i].TimeSlot.Day) < dayOrdinal(entries[j].TimeSlot.Day)
		}
		return entries[i].TimeSlot.Start < entries[j].TimeSlot.Start
	})

	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		batch := ""
		if e.Batch != nil {
			batch = e.Batch.Name
		}
		rows = append(rows, map[string]string{
			"Day":       string(e.TimeSlot.Day),
			"Start":     formatClock(e.TimeSlot.Start),
			"End":       formatClock(e.TimeSlot.End),
			"Course":    e.Course.Code,
			"Faculty":   e.Faculty.Name,
			"Classroom": e.Classroom.Name,
			"Batch":     batch,
		})
	}

	return Dataset{Headers: headers, Rows: rows}
}

var dayOrder = map[domain.DayOfWeek]int{
	domain.Monday:    0,
	domain.Tuesday:   1,
	domain.Wednesday: 2,
	domain.Thursday:  3,
	domain.Friday:    4,
	domain.Saturday:  5,
	domain.Sunday:    6,
}

func dayOrdinal(d domain.DayOfWeek) int {
	if ord, ok := dayOrder[d]; ok {
		return ord
	}
	return len(dayOrder)
}

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
