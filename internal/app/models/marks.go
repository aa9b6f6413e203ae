package models

import (
	"time"
)

// Marks defines an exam result row based on the 'marks' table. Updates are
// restricted to the staff member that created the row.
type Marks struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	StaffID       int64     `json:"staffId" db:"staff_id"`
	Subject       string    `json:"subject" db:"subject"`
	ExamType      string    `json:"examType" db:"exam_type"` // midterm, final, assignment, ...
	MarksObtained float64   `json:"marksObtained" db:"marks_obtained"`
	TotalMarks    float64   `json:"totalMarks" db:"total_marks"`
	Grade         string    `json:"grade,omitempty" db:"grade"`
	Remarks       string    `json:"remarks,omitempty" db:"remarks"`
	AcademicYear  string    `json:"academicYear" db:"academic_year"`
	Semester      string    `json:"semester" db:"semester"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Student *StudentRef `json:"student,omitempty"` // Relation, no db tag
	Staff   *StaffRef   `json:"staff,omitempty"`   // Relation, no db tag
}

// MarksSummary aggregates a student's filtered marks rows.
// Average is obtained/possible*100 over the whole set.
type MarksSummary struct {
	TotalSubjects int     `json:"totalSubjects"`
	TotalMarks    float64 `json:"totalMarks"`
	TotalPossible float64 `json:"totalPossible"`
	Average       float64 `json:"average"`
}
