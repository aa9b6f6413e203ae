package models

import (
	"time"
)

// Staff defines the staff profile based on the 'staff' table
type Staff struct {
	ID          int64     `json:"id" db:"id"`
	StaffCode   string    `json:"staffId" db:"staff_code"` // natural key, serialized as staffId
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Department  string    `json:"department" db:"department"`
	Designation string    `json:"designation" db:"designation"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	DateOfBirth time.Time `json:"dateOfBirth" db:"date_of_birth"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// StaffRef is the joined subset of staff columns attached to attendance,
// marks and grievance rows (name, staff code).
type StaffRef struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	StaffCode string `json:"staffId" db:"staff_code"`
}
