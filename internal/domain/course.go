package domain

import "fmt"

// Course is a subject that must be scheduled sessions_per_week times.
type Course struct {
	ID                           string
	Code                         string
	Name                         string
	Department                   string
	Credits                      int
	CourseType                   CourseType
	EnrolledStudents             int
	DurationMin                  int
	SessionsPerWeek              int
	RequiredEquipment            map[string]struct{}
	PreferredRoomType            string
	FacultyID                    string
	AssignedBatches              map[string]struct{}
	IsCore                       bool
	RequiresConsecutiveSessions  bool
	MinimumGapBetweenSessionsHrs int
}

// Validate enforces the Course invariants from §3.
func (c Course) Validate() error {
	if c.SessionsPerWeek < 1 {
		return fmt.Errorf("course %s: sessions_per_week must be >= 1", c.Code)
	}
	if c.EnrolledStudents <= 0 {
		return fmt.Errorf("course %s: enrolled_students must be > 0", c.Code)
	}
	return nil
}

// RequiredCapacity returns the classroom capacity this course needs,
// including the 10% buffer: ceil(enrolled * 1.1), computed in integer
// arithmetic so that, for example, 50 students need exactly 55 seats.
func (c Course) RequiredCapacity() int {
	return (c.EnrolledStudents*11 + 9) / 10
}

// RoomCompatible implements §4.1's room_compatible predicate.
func RoomCompatible(c Course, r Classroom) bool {
	if r.Capacity < c.RequiredCapacity() {
		return false
	}
	if !r.HasEquipment(c.RequiredEquipment) {
		return false
	}
	if c.CourseType == Lab && r.RoomType != "Lab" {
		return false
	}
	return true
}
