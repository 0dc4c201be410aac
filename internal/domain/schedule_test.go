package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry(facultyID, classroomID, courseID string, slot TimeSlot) ScheduleEntry {
	return ScheduleEntry{
		Course:    Course{ID: courseID, Code: courseID, EnrolledStudents: 10},
		Faculty:   Faculty{ID: facultyID, Name: facultyID},
		Classroom: Classroom{ID: classroomID, Name: classroomID, Capacity: 30},
		TimeSlot:  slot,
	}
}

func TestConflictsSharedFaculty(t *testing.T) {
	slot1 := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	slot2 := TimeSlot{ID: "s2", Day: Monday, Start: 570, End: 660}
	e1 := sampleEntry("f1", "r1", "c1", slot1)
	e2 := sampleEntry("f1", "r2", "c2", slot2)
	assert.True(t, Conflicts(e1, e2), "same faculty, overlapping slots")
}

func TestConflictsSharedClassroom(t *testing.T) {
	slot1 := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	slot2 := TimeSlot{ID: "s2", Day: Monday, Start: 570, End: 660}
	e1 := sampleEntry("f1", "r1", "c1", slot1)
	e2 := sampleEntry("f2", "r1", "c2", slot2)
	assert.True(t, Conflicts(e1, e2), "same classroom, overlapping slots")
}

func TestConflictsNoOverlapNoConflict(t *testing.T) {
	slot1 := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	slot2 := TimeSlot{ID: "s2", Day: Monday, Start: 630, End: 720}
	e1 := sampleEntry("f1", "r1", "c1", slot1)
	e2 := sampleEntry("f1", "r1", "c2", slot2)
	assert.False(t, Conflicts(e1, e2), "back-to-back slots never conflict regardless of shared resources")
}

func TestConflictsDisjointResourcesNoConflict(t *testing.T) {
	slot1 := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	e1 := sampleEntry("f1", "r1", "c1", slot1)
	e2 := sampleEntry("f2", "r2", "c2", slot1)
	assert.False(t, Conflicts(e1, e2), "overlapping slot but no shared faculty/classroom/course")
}

func TestScheduleAddEntryRejectsConflict(t *testing.T) {
	s := NewSchedule()
	slot := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	require.True(t, s.AddEntry(sampleEntry("f1", "r1", "c1", slot)))

	ok := s.AddEntry(sampleEntry("f1", "r2", "c2", slot))
	assert.False(t, ok, "second entry shares faculty and overlaps")
	assert.Len(t, s.Entries, 1)
	assert.NotEmpty(t, s.Conflicts)
}

func TestScheduleAddEntryAcceptsDisjoint(t *testing.T) {
	s := NewSchedule()
	slot1 := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	slot2 := TimeSlot{ID: "s2", Day: Tuesday, Start: 540, End: 630}
	assert.True(t, s.AddEntry(sampleEntry("f1", "r1", "c1", slot1)))
	assert.True(t, s.AddEntry(sampleEntry("f1", "r1", "c2", slot2)))
	assert.Len(t, s.Entries, 2)
	assert.True(t, s.IsValid())
}

func TestScheduleRemoveEntry(t *testing.T) {
	s := NewSchedule()
	slot := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	entry := sampleEntry("f1", "r1", "c1", slot)
	require.True(t, s.AddEntry(entry))
	assert.True(t, s.RemoveEntry(entry))
	assert.Empty(t, s.Entries)
	assert.False(t, s.RemoveEntry(entry), "already removed")
}

func TestScheduleOptimizationScore(t *testing.T) {
	s := NewSchedule()
	slot := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	entry := sampleEntry("f1", "r1", "c1", slot)
	entry.Faculty.PreferredSlots = []TimeSlot{slot}
	require.True(t, s.AddEntry(entry))

	score := s.CalculateOptimizationScore()
	assert.Greater(t, score, 0.0)
	assert.Equal(t, score, s.OptimizationScore)
}

func TestScheduleGetSummary(t *testing.T) {
	s := NewSchedule()
	slot := TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}
	require.True(t, s.AddEntry(sampleEntry("f1", "r1", "c1", slot)))
	s.CalculateOptimizationScore()

	summary := s.GetSummary()
	assert.Equal(t, 1, summary.TotalEntries)
	assert.Equal(t, 0, summary.TotalConflicts)
	assert.True(t, summary.IsValid)
}
