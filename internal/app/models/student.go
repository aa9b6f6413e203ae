package models

import (
	"time"
)

// Student defines the student profile based on the 'students' table
type Student struct {
	ID               int64         `json:"id" db:"id"`
	EnrollmentNumber string        `json:"enrollmentNumber" db:"enrollment_number"`
	Name             string        `json:"name" db:"name"`
	Email            string        `json:"email" db:"email"`
	DateOfBirth      time.Time     `json:"dateOfBirth" db:"date_of_birth"`
	Course           string        `json:"course" db:"course"`
	Year             int           `json:"year" db:"year"` // 1..5
	Phone            string        `json:"phone,omitempty" db:"phone"`
	Address          string        `json:"address,omitempty" db:"address"`
	ParentName       string        `json:"parentName,omitempty" db:"parent_name"`
	ParentPhone      string        `json:"parentPhone,omitempty" db:"parent_phone"`
	Status           StudentStatus `json:"status" db:"status"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

// StudentRef is the joined subset of student columns attached to attendance,
// marks and grievance rows (name, enrollment number, course, year).
type StudentRef struct {
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	EnrollmentNumber string `json:"enrollmentNumber" db:"enrollment_number"`
	Course           string `json:"course" db:"course"`
	Year             int    `json:"year" db:"year"`
}
