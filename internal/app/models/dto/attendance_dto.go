package dto

// CreateAttendanceRequest is the body for marking attendance. The staff
// reference always comes from the authenticated profile, never the body.
type CreateAttendanceRequest struct {
	StudentID int64  `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=present absent late"`
	Remarks   string `json:"remarks"`
	Subject   string `json:"subject" binding:"required"`
}

// StaffAttendanceQuery filters a staff member's own attendance records
type StaffAttendanceQuery struct {
	StudentID int64  `form:"studentId"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Subject   string `form:"subject"`
}

// StudentAttendanceQuery filters a student's own attendance records
type StudentAttendanceQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Subject   string `form:"subject"`
}
