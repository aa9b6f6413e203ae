package models

import (
	"time"
)

// Grievance defines a student complaint based on the 'grievances' table.
// Students create; only staff mutate status/response.
type Grievance struct {
	ID          int64             `json:"id" db:"id"`
	StudentID   int64             `json:"studentId" db:"student_id"`
	Subject     string            `json:"subject" db:"subject"`
	Description string            `json:"description" db:"description"`
	Category    string            `json:"category" db:"category"` // academic, administrative, hostel, ...
	Priority    GrievancePriority `json:"priority" db:"priority"`
	Status      GrievanceStatus   `json:"status" db:"status"`
	Response    string            `json:"response,omitempty" db:"response"`
	RespondedBy *int64            `json:"respondedById,omitempty" db:"responded_by"`
	RespondedAt *time.Time        `json:"respondedAt,omitempty" db:"responded_at"`
	CreatedAt   time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time         `json:"updatedAt" db:"updated_at"`

	Student   *StudentRef `json:"student,omitempty"`     // Relation, no db tag
	Responder *StaffRef   `json:"respondedBy,omitempty"` // Relation, no db tag
}
