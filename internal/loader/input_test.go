package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProblemJSON = `{
  "courses": [
    {"code": "CS101", "department": "CS", "course_type": "Lecture", "enrolled_students": 30, "duration_min": 90, "sessions_per_week": 1, "faculty_id": "f1"}
  ],
  "faculty": [
    {"id": "f1", "name": "Alice", "department": "CS",
     "available_slots": [{"day": "Monday", "start": 540, "end": 630}]}
  ],
  "classrooms": [
    {"id": "r1", "name": "Room 1", "capacity": 40}
  ],
  "time_slots": [
    {"day": "Monday", "start": 540, "end": 630}
  ]
}`

func TestLoadValidProblem(t *testing.T) {
	p, err := Load(strings.NewReader(validProblemJSON))

	require.NoError(t, err)
	require.Len(t, p.Courses, 1)
	assert.Equal(t, "CS101", p.Courses[0].Code)
	assert.Equal(t, "f1", p.Faculty[0].ID)
	assert.Equal(t, "Regular", p.Classrooms[0].RoomType)
	assert.NotEmpty(t, p.Courses[0].ID, "blank ids get a generated uuid")
}

func TestLoadRejectsMissingRequiredField(t *testing.T) {
	badJSON := `{
	  "courses": [{"department": "CS", "course_type": "Lecture", "enrolled_students": 30, "duration_min": 90, "sessions_per_week": 1}],
	  "faculty": [{"id": "f1", "name": "Alice", "department": "CS"}],
	  "classrooms": [{"id": "r1", "name": "Room 1", "capacity": 40}],
	  "time_slots": [{"day": "Monday", "start": 540, "end": 630}]
	}`

	_, err := Load(strings.NewReader(badJSON))
	assert.Error(t, err, "course.code is required")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyCourseList(t *testing.T) {
	badJSON := `{
	  "courses": [],
	  "faculty": [{"id": "f1", "name": "Alice", "department": "CS"}],
	  "classrooms": [{"id": "r1", "name": "Room 1", "capacity": 40}],
	  "time_slots": [{"day": "Monday", "start": 540, "end": 630}]
	}`

	_, err := Load(strings.NewReader(badJSON))
	assert.Error(t, err)
}
