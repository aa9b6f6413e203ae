package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulm/campusdesk/internal/app/models"
)

// AttendanceRepository handles attendance database operations. Rows are
// append-only.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Create inserts an attendance record and fills the generated fields
func (r *AttendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance (student_id, staff_id, date, status, remarks, subject)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		a.StudentID, a.StaffID, a.Date, a.Status, a.Remarks, a.Subject).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating attendance: %w", err)
	}
	return nil
}

// StaffFilter narrows a staff member's own attendance listing
type StaffFilter struct {
	StudentID int64
	Date      *time.Time
	Subject   string
}

// ListForStaff retrieves a staff member's attendance rows with the student
// joined, newest date first.
func (r *AttendanceRepository) ListForStaff(ctx context.Context, staffID int64, filter StaffFilter) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.staff_id, a.date, a.status, a.remarks, a.subject, a.created_at,
			s.id, s.name, s.enrollment_number, s.course, s.year
		FROM attendance a
		JOIN students s ON s.id = a.student_id
		WHERE a.staff_id = $1`
	args := []any{staffID}

	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		query += fmt.Sprintf(" AND a.student_id = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND a.date = $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND a.subject = $%d", len(args))
	}
	query += " ORDER BY a.date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{Student: &models.StudentRef{}}
		err := rows.Scan(&a.ID, &a.StudentID, &a.StaffID, &a.Date, &a.Status, &a.Remarks, &a.Subject, &a.CreatedAt,
			&a.Student.ID, &a.Student.Name, &a.Student.EnrollmentNumber, &a.Student.Course, &a.Student.Year)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// StudentFilter narrows a student's own attendance listing
type StudentFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Subject   string
}

// ListForStudent retrieves a student's attendance rows with the staff member
// joined, newest date first.
func (r *AttendanceRepository) ListForStudent(ctx context.Context, studentID int64, filter StudentFilter) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.staff_id, a.date, a.status, a.remarks, a.subject, a.created_at,
			st.id, st.name, st.staff_code
		FROM attendance a
		JOIN staff st ON st.id = a.staff_id
		WHERE a.student_id = $1`
	args := []any{studentID}

	// date range applies only when both bounds are set
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND a.date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND a.subject = $%d", len(args))
	}
	query += " ORDER BY a.date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		a := &models.Attendance{Staff: &models.StaffRef{}}
		err := rows.Scan(&a.ID, &a.StudentID, &a.StaffID, &a.Date, &a.Status, &a.Remarks, &a.Subject, &a.CreatedAt,
			&a.Staff.ID, &a.Staff.Name, &a.Staff.StaffCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
