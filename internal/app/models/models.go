package models

// Role defines the account role type
type Role string

const (
	RoleStudent    Role = "student"
	RoleStaff      Role = "staff"
	RoleSuperAdmin Role = "superadmin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleStaff, RoleSuperAdmin:
		return true
	}
	return false
}

// AttendanceStatus defines the attendance record status
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// StudentStatus defines the student profile status
type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentInactive StudentStatus = "inactive"
)

// GrievancePriority defines the grievance priority level
type GrievancePriority string

const (
	PriorityLow    GrievancePriority = "low"
	PriorityMedium GrievancePriority = "medium"
	PriorityHigh   GrievancePriority = "high"
)

// GrievanceStatus defines the grievance workflow state
type GrievanceStatus string

const (
	GrievancePending    GrievanceStatus = "pending"
	GrievanceInProgress GrievanceStatus = "in_progress"
	GrievanceResolved   GrievanceStatus = "resolved"
	GrievanceRejected   GrievanceStatus = "rejected"
)
