package dto

// CreateGrievanceRequest is the body for filing a grievance
type CreateGrievanceRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// RespondGrievanceRequest is the body for a staff response
type RespondGrievanceRequest struct {
	Response string `json:"response" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=pending in_progress resolved rejected"`
}

// GrievanceQuery filters grievance listings
type GrievanceQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending in_progress resolved rejected"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high"`
}
