package dto

// UpdateStaffRequest is the body for partial staff updates. A changed staff
// code also renames the linked account's username.
type UpdateStaffRequest struct {
	StaffCode   *string `json:"staffId"`
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"isActive"`
}
