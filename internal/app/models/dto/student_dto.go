package dto

// StudentListQuery holds the list/search query parameters
type StudentListQuery struct {
	Q      string `form:"q"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order" binding:"omitempty,oneof=asc desc"`
}

// CreateStudentRequest is the body for creating a student profile
type CreateStudentRequest struct {
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

// UpdateStudentRequest is the body for partial student updates. Nil fields
// are left unchanged; a changed enrollment number also renames the linked
// account's username.
type UpdateStudentRequest struct {
	EnrollmentNumber *string `json:"enrollmentNumber"`
	Name             *string `json:"name"`
	Email            *string `json:"email" binding:"omitempty,email"`
	DateOfBirth      *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Course           *string `json:"course"`
	Year             *int    `json:"year" binding:"omitempty,min=1,max=5"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
	ParentName       *string `json:"parentName"`
	ParentPhone      *string `json:"parentPhone"`
	Status           *string `json:"status" binding:"omitempty,oneof=active inactive"`
}
