package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Batch is a cohort of students sharing a contiguous student-id range.
type Batch struct {
	ID              string
	Name            string
	Department      string
	StudentCount    int
	StudentIDStart  string
	StudentIDEnd    string
}

// Validate enforces that the numeric suffix of the id range is
// non-decreasing and that both ids share a common alphabetic prefix.
func (b Batch) Validate() error {
	startPrefix, startNum, err := splitStudentID(b.StudentIDStart)
	if err != nil {
		return fmt.Errorf("batch %s: invalid student_id_start: %w", b.Name, err)
	}
	endPrefix, endNum, err := splitStudentID(b.StudentIDEnd)
	if err != nil {
		return fmt.Errorf("batch %s: invalid student_id_end: %w", b.Name, err)
	}
	if startPrefix != endPrefix {
		return fmt.Errorf("batch %s: student id prefixes differ (%q vs %q)", b.Name, startPrefix, endPrefix)
	}
	if startNum > endNum {
		return fmt.Errorf("batch %s: student id range start > end", b.Name)
	}
	return nil
}

// BelongsToBatch reports whether studentID falls within this batch's
// id range (same alphabetic prefix, numeric suffix within bounds).
func (b Batch) BelongsToBatch(studentID string) bool {
	prefix, num, err := splitStudentID(studentID)
	if err != nil {
		return false
	}
	startPrefix, startNum, err := splitStudentID(b.StudentIDStart)
	if err != nil {
		return false
	}
	endPrefix, endNum, err := splitStudentID(b.StudentIDEnd)
	if err != nil {
		return false
	}
	if prefix != startPrefix || prefix != endPrefix {
		return false
	}
	return startNum <= num && num <= endNum
}

func splitStudentID(id string) (prefix string, num int, err error) {
	var prefixRunes, digitRunes []rune
	for _, r := range id {
		if r >= '0' && r <= '9' {
			digitRunes = append(digitRunes, r)
		} else {
			prefixRunes = append(prefixRunes, r)
		}
	}
	if len(digitRunes) == 0 {
		return "", 0, fmt.Errorf("no numeric suffix in %q", id)
	}
	n, err := strconv.Atoi(string(digitRunes))
	if err != nil {
		return "", 0, err
	}
	return strings.ToUpper(string(prefixRunes)), n, nil
}
