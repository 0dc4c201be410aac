// Package loader decodes the JSON problem file the CLI accepts into
// validated domain entities, the same validate-then-convert shape the
// teacher uses for its request DTOs.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
	apperrors "github.com/Anuj10110/ai-timetable-generator/pkg/errors"
)

// courseInput mirrors domain.Course's JSON shape, with validator tags
// covering the invariants §3 requires before a solve can start.
type courseInput struct {
	ID                           string   `json:"id"`
	Code                         string   `json:"code" validate:"required"`
	Name                         string   `json:"name"`
	Department                  string   `json:"department" validate:"required"`
	Credits                      int      `json:"credits"`
	CourseType                   string   `json:"course_type" validate:"required"`
	EnrolledStudents             int      `json:"enrolled_students" validate:"required,min=1"`
	DurationMin                  int      `json:"duration_min" validate:"required,min=1"`
	SessionsPerWeek              int      `json:"sessions_per_week" validate:"required,min=1"`
	RequiredEquipment            []string `json:"required_equipment"`
	PreferredRoomType            string   `json:"preferred_room_type"`
	FacultyID                    string   `json:"faculty_id"`
	AssignedBatches              []string `json:"assigned_batches"`
	IsCore                       bool     `json:"is_core"`
	RequiresConsecutiveSessions  bool     `json:"requires_consecutive_sessions"`
	MinimumGapBetweenSessionsHrs int      `json:"minimum_gap_between_sessions_hrs"`
}

type timeSlotInput struct {
	ID    string `json:"id"`
	Day   string `json:"day" validate:"required"`
	Start int    `json:"start" validate:"min=0"`
	End   int    `json:"end" validate:"required"`
}

type facultyInput struct {
	ID                string          `json:"id"`
	Name              string          `json:"name" validate:"required"`
	Department        string          `json:"department" validate:"required"`
	AvailableSlots    []timeSlotInput `json:"available_slots"`
	UnavailableSlots  []timeSlotInput `json:"unavailable_slots"`
	PreferredSlots    []timeSlotInput `json:"preferred_slots"`
	MaxHoursPerWeek   int             `json:"max_hours_per_week"`
	MaxClassesPerDay  int             `json:"max_classes_per_day"`
	SubjectsExpertise []string        `json:"subjects_expertise"`
}

type classroomInput struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" validate:"required"`
	Capacity  int      `json:"capacity" validate:"required,min=1"`
	RoomType  string   `json:"room_type"`
	Equipment []string `json:"equipment"`
	Location  string   `json:"location"`
}

type batchInput struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	Department     string `json:"department"`
	StudentCount   int    `json:"student_count"`
	StudentIDStart string `json:"student_id_start"`
	StudentIDEnd   string `json:"student_id_end"`
}

type unavailabilityInput struct {
	FacultyID string `json:"faculty_id" validate:"required"`
	Day       string `json:"day" validate:"required"`
	StartMin  int    `json:"start_min" validate:"min=0"`
	EndMin    int    `json:"end_min" validate:"required"`
	Reason    string `json:"reason"`
	Priority  int    `json:"priority"`
	Note      string `json:"note"`
}

// problemInput is the top-level shape of the JSON input file.
type problemInput struct {
	Courses          []courseInput         `json:"courses" validate:"required,min=1,dive"`
	Faculty          []facultyInput         `json:"faculty" validate:"required,min=1,dive"`
	Classrooms       []classroomInput       `json:"classrooms" validate:"required,min=1,dive"`
	TimeSlots        []timeSlotInput        `json:"time_slots" validate:"required,min=1,dive"`
	Batches          []batchInput           `json:"batches" validate:"dive"`
	Unavailabilities []unavailabilityInput  `json:"unavailabilities" validate:"dive"`
}

// Load decodes and validates a problem file from r, assigning a uuid
// to any entity whose id was left blank, and returns the resulting
// solver.Problem.
func Load(r io.Reader) (solver.Problem, error) {
	var input problemInput
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return solver.Problem{}, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, apperrors.ErrInvalidInput.Status, "malformed problem JSON")
	}

	if err := validator.New().Struct(input); err != nil {
		return solver.Problem{}, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, apperrors.ErrInvalidInput.Status, "invalid problem input")
	}

	p := solver.Problem{
		Courses:    make([]domain.Course, 0, len(input.Courses)),
		Faculty:    make([]domain.Faculty, 0, len(input.Faculty)),
		Classrooms: make([]domain.Classroom, 0, len(input.Classrooms)),
		TimeSlots:  make([]domain.TimeSlot, 0, len(input.TimeSlots)),
		Batches:    make([]domain.Batch, 0, len(input.Batches)),
	}

	for _, c := range input.Courses {
		p.Courses = append(p.Courses, toCourse(c))
	}
	for _, f := range input.Faculty {
		p.Faculty = append(p.Faculty, toFaculty(f))
	}
	for _, c := range input.Classrooms {
		p.Classrooms = append(p.Classrooms, toClassroom(c))
	}
	for _, t := range input.TimeSlots {
		p.TimeSlots = append(p.TimeSlots, toTimeSlot(t))
	}
	for _, b := range input.Batches {
		p.Batches = append(p.Batches, toBatch(b))
	}
	for _, u := range input.Unavailabilities {
		unavailability := domain.FacultyUnavailability{
			FacultyID: u.FacultyID,
			Day:       domain.DayOfWeek(u.Day),
			StartMin:  u.StartMin,
			EndMin:    u.EndMin,
			Reason:    domain.UnavailabilityReason(u.Reason),
			Priority:  u.Priority,
			Note:      u.Note,
		}
		if err := unavailability.Validate(); err != nil {
			return solver.Problem{}, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, apperrors.ErrInvalidInput.Status, "invalid faculty unavailability")
		}
		p.Unavailabilities = append(p.Unavailabilities, unavailability)
	}

	return p, nil
}

func toStringSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func toCourse(c courseInput) domain.Course {
	return domain.Course{
		ID:                           idOrNew(c.ID),
		Code:                         c.Code,
		Name:                         c.Name,
		Department:                   c.Department,
		Credits:                      c.Credits,
		CourseType:                   domain.CourseType(c.CourseType),
		EnrolledStudents:             c.EnrolledStudents,
		DurationMin:                  c.DurationMin,
		SessionsPerWeek:              c.SessionsPerWeek,
		RequiredEquipment:            toStringSet(c.RequiredEquipment),
		PreferredRoomType:            c.PreferredRoomType,
		FacultyID:                    c.FacultyID,
		AssignedBatches:              toStringSet(c.AssignedBatches),
		IsCore:                       c.IsCore,
		RequiresConsecutiveSessions:  c.RequiresConsecutiveSessions,
		MinimumGapBetweenSessionsHrs: c.MinimumGapBetweenSessionsHrs,
	}
}

func toTimeSlot(t timeSlotInput) domain.TimeSlot {
	id := t.ID
	if id == "" {
		id = fmt.Sprintf("%s-%d", t.Day, t.Start)
	}
	return domain.TimeSlot{ID: id, Day: domain.DayOfWeek(t.Day), Start: t.Start, End: t.End}
}

func toFaculty(f facultyInput) domain.Faculty {
	slots := func(in []timeSlotInput) []domain.TimeSlot {
		out := make([]domain.TimeSlot, 0, len(in))
		for _, s := range in {
			out = append(out, toTimeSlot(s))
		}
		return out
	}
	return domain.Faculty{
		ID:                idOrNew(f.ID),
		Name:              f.Name,
		Department:        f.Department,
		AvailableSlots:    slots(f.AvailableSlots),
		UnavailableSlots:  slots(f.UnavailableSlots),
		PreferredSlots:    slots(f.PreferredSlots),
		MaxHoursPerWeek:   f.MaxHoursPerWeek,
		MaxClassesPerDay:  f.MaxClassesPerDay,
		SubjectsExpertise: toStringSet(f.SubjectsExpertise),
	}
}

func toClassroom(c classroomInput) domain.Classroom {
	roomType := c.RoomType
	if roomType == "" {
		roomType = "Regular"
	}
	return domain.Classroom{
		ID:        idOrNew(c.ID),
		Name:      c.Name,
		Capacity:  c.Capacity,
		RoomType:  roomType,
		Equipment: toStringSet(c.Equipment),
		Location:  c.Location,
	}
}

func toBatch(b batchInput) domain.Batch {
	return domain.Batch{
		ID:             idOrNew(b.ID),
		Name:           b.Name,
		Department:     b.Department,
		StudentCount:   b.StudentCount,
		StudentIDStart: b.StudentIDStart,
		StudentIDEnd:   b.StudentIDEnd,
	}
}
