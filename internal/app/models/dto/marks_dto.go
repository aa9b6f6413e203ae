package dto

// CreateMarksRequest is the body for adding marks
type CreateMarksRequest struct {
	StudentID     int64   `json:"studentId" binding:"required"`
	Subject       string  `json:"subject" binding:"required"`
	ExamType      string  `json:"examType" binding:"required"`
	MarksObtained float64 `json:"marksObtained" binding:"min=0,max=100"`
	TotalMarks    float64 `json:"totalMarks" binding:"required,min=1"`
	Grade         string  `json:"grade"`
	Remarks       string  `json:"remarks"`
	AcademicYear  string  `json:"academicYear" binding:"required"`
	Semester      string  `json:"semester" binding:"required"`
}

// UpdateMarksRequest is the body for partial marks updates, restricted to
// rows authored by the calling staff member.
type UpdateMarksRequest struct {
	StudentID     *int64   `json:"studentId"`
	Subject       *string  `json:"subject"`
	ExamType      *string  `json:"examType"`
	MarksObtained *float64 `json:"marksObtained" binding:"omitempty,min=0,max=100"`
	TotalMarks    *float64 `json:"totalMarks" binding:"omitempty,min=1"`
	Grade         *string  `json:"grade"`
	Remarks       *string  `json:"remarks"`
	AcademicYear  *string  `json:"academicYear"`
	Semester      *string  `json:"semester"`
}

// StaffMarksQuery filters a staff member's own marks rows
type StaffMarksQuery struct {
	StudentID    int64  `form:"studentId"`
	Subject      string `form:"subject"`
	AcademicYear string `form:"academicYear"`
	Semester     string `form:"semester"`
}

// StudentMarksQuery filters a student's own marks rows
type StudentMarksQuery struct {
	Subject      string `form:"subject"`
	AcademicYear string `form:"academicYear"`
	Semester     string `form:"semester"`
}
