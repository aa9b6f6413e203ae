package dto

import (
	"github.com/rahulm/campusdesk/internal/app/models"
)

// LoginRequest is the body for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=student staff superadmin"`
}

// AuthUser is the account subset returned on login
type AuthUser struct {
	ID      int64       `json:"id"`
	Role    models.Role `json:"role"`
	Profile interface{} `json:"profile"`
}

// LoginResponse is the body returned by a successful login
type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// RegisterStudentRequest is the body for student registration. Date of birth
// doubles as the initial password.
type RegisterStudentRequest struct {
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	DateOfBirth      string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Course           string `json:"course" binding:"required"`
	Year             int    `json:"year" binding:"required,min=1,max=5"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	ParentName       string `json:"parentName"`
	ParentPhone      string `json:"parentPhone"`
}

// RegisterStaffRequest is the body for staff registration
type RegisterStaffRequest struct {
	StaffCode   string `json:"staffId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Department  string `json:"department" binding:"required"`
	Designation string `json:"designation" binding:"required"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
}

// CreateSuperAdminRequest is the body for one-time superadmin creation
type CreateSuperAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
