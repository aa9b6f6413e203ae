package dto

import (
	"time"

	"github.com/rahulm/campusdesk/internal/app/models"
)

// AccountListQuery filters the superadmin account listing
type AccountListQuery struct {
	Role     string `form:"role" binding:"omitempty,oneof=student staff superadmin"`
	IsActive *bool  `form:"isActive"`
}

// AccountResponse is an account with its profile populated and the password
// hash stripped.
type AccountResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	Profile   interface{} `json:"profile"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// NewAccountResponse builds the wire form of an account
func NewAccountResponse(a *models.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Role:      a.Role,
		IsActive:  a.IsActive,
		Profile:   a.Profile(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreatedAccountRef is the account subset returned alongside a provisioned
// profile.
type CreatedAccountRef struct {
	ID   int64       `json:"id"`
	Role models.Role `json:"role"`
}

// CreatedStudentResponse is returned by the superadmin student-provisioning
// route.
type CreatedStudentResponse struct {
	Student *models.Student   `json:"student"`
	User    CreatedAccountRef `json:"user"`
}

// CreatedStaffResponse is returned by the superadmin staff-provisioning route.
type CreatedStaffResponse struct {
	Staff *models.Staff     `json:"staff"`
	User  CreatedAccountRef `json:"user"`
}
