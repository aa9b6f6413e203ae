package models

import (
	"time"
)

// Account defines the authentication record based on the 'accounts' table.
// Exactly one of StudentID/StaffID is set for student/staff roles; superadmin
// accounts carry neither.
type Account struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // bcrypt hash, excluded from JSON
	Role         Role      `json:"role" db:"role"`
	StudentID    *int64    `json:"studentId,omitempty" db:"student_id"`
	StaffID      *int64    `json:"staffId,omitempty" db:"staff_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Student *Student `json:"-"` // Relation, no db tag
	Staff   *Staff   `json:"-"` // Relation, no db tag
}

// Profile returns the linked profile record, if any, as an opaque value for
// serialization. Superadmin accounts return nil.
func (a *Account) Profile() interface{} {
	switch {
	case a.Student != nil:
		return a.Student
	case a.Staff != nil:
		return a.Staff
	}
	return nil
}
