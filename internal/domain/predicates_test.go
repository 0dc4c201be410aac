package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlotOverlaps(t *testing.T) {
	a := TimeSlot{ID: "a", Day: Monday, Start: 540, End: 630}
	b := TimeSlot{ID: "b", Day: Monday, Start: 600, End: 690}
	c := TimeSlot{ID: "c", Day: Tuesday, Start: 540, End: 630}
	d := TimeSlot{ID: "d", Day: Monday, Start: 630, End: 720}

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
	assert.False(t, Overlaps(a, c), "different days never overlap")
	assert.False(t, Overlaps(a, d), "back-to-back slots do not overlap")
	assert.True(t, Overlaps(a, a))
}

func TestTimeSlotValidate(t *testing.T) {
	require.NoError(t, TimeSlot{ID: "ok", Day: Monday, Start: 0, End: 60}.Validate())
	assert.Error(t, TimeSlot{ID: "bad", Day: Monday, Start: 60, End: 60}.Validate())
	assert.Error(t, TimeSlot{ID: "bad", Day: Monday, Start: -5, End: 60}.Validate())
	assert.Error(t, TimeSlot{ID: "bad", Day: Monday, Start: 0, End: 1500}.Validate())
}

func TestCourseRequiredCapacity(t *testing.T) {
	c := Course{Code: "CS101", EnrolledStudents: 50}
	assert.Equal(t, 55, c.RequiredCapacity())

	c2 := Course{Code: "CS102", EnrolledStudents: 41}
	assert.Equal(t, 46, c2.RequiredCapacity(), "ceil(41*1.1) = ceil(45.1) = 46")
}

func TestRoomCompatible(t *testing.T) {
	course := Course{
		Code:              "CS201",
		CourseType:        Lab,
		EnrolledStudents:  20,
		RequiredEquipment: map[string]struct{}{"projector": {}},
	}
	labRoom := Classroom{ID: "r1", Capacity: 30, RoomType: "Lab", Equipment: map[string]struct{}{"projector": {}, "pcs": {}}}
	lectureRoom := Classroom{ID: "r2", Capacity: 30, RoomType: "Regular", Equipment: map[string]struct{}{"projector": {}}}
	smallRoom := Classroom{ID: "r3", Capacity: 10, RoomType: "Lab", Equipment: map[string]struct{}{"projector": {}}}
	noEquipRoom := Classroom{ID: "r4", Capacity: 30, RoomType: "Lab", Equipment: map[string]struct{}{}}

	assert.True(t, RoomCompatible(course, labRoom))
	assert.False(t, RoomCompatible(course, lectureRoom), "lab course requires a lab room")
	assert.False(t, RoomCompatible(course, smallRoom), "capacity below required fails")
	assert.False(t, RoomCompatible(course, noEquipRoom), "missing required equipment fails")
}

func TestFacultyIsAvailable(t *testing.T) {
	f := Faculty{
		ID:               "f1",
		AvailableSlots:   []TimeSlot{{ID: "avail", Day: Monday, Start: 540, End: 900}},
		UnavailableSlots: []TimeSlot{{ID: "blocked", Day: Monday, Start: 600, End: 660}},
	}
	assert.True(t, f.IsAvailable(TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 600}))
	assert.False(t, f.IsAvailable(TimeSlot{ID: "s2", Day: Monday, Start: 600, End: 660}), "overlaps blocked window")
	assert.False(t, f.IsAvailable(TimeSlot{ID: "s3", Day: Tuesday, Start: 540, End: 600}), "outside available days entirely")
}

func TestFacultyPreferenceScore(t *testing.T) {
	f := Faculty{
		PreferredSlots: []TimeSlot{{ID: "p1", Day: Monday, Start: 540, End: 630}},
	}
	assert.Equal(t, 1.0, f.PreferenceScore(TimeSlot{ID: "s1", Day: Monday, Start: 540, End: 630}))
	assert.Equal(t, 0.5, f.PreferenceScore(TimeSlot{ID: "s2", Day: Tuesday, Start: 540, End: 630}))
}

func TestBatchBelongsToBatch(t *testing.T) {
	b := Batch{Name: "CSE-A", StudentIDStart: "CS001", StudentIDEnd: "CS060"}
	assert.True(t, b.BelongsToBatch("CS030"))
	assert.True(t, b.BelongsToBatch("cs001"), "prefix comparison is case-insensitive")
	assert.False(t, b.BelongsToBatch("CS061"))
	assert.False(t, b.BelongsToBatch("EE001"), "different prefix")
	require.NoError(t, b.Validate())
}

func TestFacultyUnavailabilityConflictsWithSlot(t *testing.T) {
	u := FacultyUnavailability{FacultyID: "f1", Day: Wednesday, StartMin: 660, EndMin: 720, Reason: ReasonConference}
	assert.True(t, u.ConflictsWithSlot(TimeSlot{ID: "s1", Day: Wednesday, Start: 690, End: 750}))
	assert.False(t, u.ConflictsWithSlot(TimeSlot{ID: "s2", Day: Thursday, Start: 660, End: 720}), "different day")
	assert.False(t, u.ConflictsWithSlot(TimeSlot{ID: "s3", Day: Wednesday, Start: 720, End: 780}), "back-to-back, no overlap")
}
