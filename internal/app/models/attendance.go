package models

import (
	"time"
)

// Attendance defines a single attendance record based on the 'attendance'
// table. Rows are append-only: they are never updated or deleted.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	StaffID   int64            `json:"staffId" db:"staff_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status"`
	Remarks   string           `json:"remarks,omitempty" db:"remarks"`
	Subject   string           `json:"subject" db:"subject"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	Student *StudentRef `json:"student,omitempty"` // Relation, no db tag
	Staff   *StaffRef   `json:"staff,omitempty"`   // Relation, no db tag
}

// AttendanceSummary aggregates a student's filtered attendance rows.
// Percentage counts late as attended: (present+late)/total*100.
type AttendanceSummary struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Percentage float64 `json:"percentage"`
}
