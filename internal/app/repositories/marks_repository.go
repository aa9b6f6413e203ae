package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
)

const marksColumns = `m.id, m.student_id, m.staff_id, m.subject, m.exam_type, m.marks_obtained,
	m.total_marks, m.grade, m.remarks, m.academic_year, m.semester, m.created_at, m.updated_at`

// MarksRepository handles marks database operations
type MarksRepository struct {
	db *pgxpool.Pool
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{
		db: db,
	}
}

// Create inserts a marks row and fills the generated fields
func (r *MarksRepository) Create(ctx context.Context, m *models.Marks) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO marks (student_id, staff_id, subject, exam_type, marks_obtained, total_marks,
			grade, remarks, academic_year, semester)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		m.StudentID, m.StaffID, m.Subject, m.ExamType, m.MarksObtained, m.TotalMarks,
		m.Grade, m.Remarks, m.AcademicYear, m.Semester).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating marks: %w", err)
	}
	return nil
}

// MarksFilter narrows marks listings
type MarksFilter struct {
	StudentID    int64
	Subject      string
	AcademicYear string
	Semester     string
}

// ListForStaff retrieves the rows a staff member authored, student joined,
// newest academic year first.
func (r *MarksRepository) ListForStaff(ctx context.Context, staffID int64, filter MarksFilter) ([]*models.Marks, error) {
	query := `
		SELECT ` + marksColumns + `,
			s.id, s.name, s.enrollment_number, s.course, s.year
		FROM marks m
		JOIN students s ON s.id = m.student_id
		WHERE m.staff_id = $1`
	args := []any{staffID}

	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		query += fmt.Sprintf(" AND m.student_id = $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND m.subject = $%d", len(args))
	}
	if filter.AcademicYear != "" {
		args = append(args, filter.AcademicYear)
		query += fmt.Sprintf(" AND m.academic_year = $%d", len(args))
	}
	if filter.Semester != "" {
		args = append(args, filter.Semester)
		query += fmt.Sprintf(" AND m.semester = $%d", len(args))
	}
	query += " ORDER BY m.academic_year DESC, m.semester DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing marks: %w", err)
	}
	defer rows.Close()

	var records []*models.Marks
	for rows.Next() {
		m := &models.Marks{Student: &models.StudentRef{}}
		err := rows.Scan(&m.ID, &m.StudentID, &m.StaffID, &m.Subject, &m.ExamType, &m.MarksObtained,
			&m.TotalMarks, &m.Grade, &m.Remarks, &m.AcademicYear, &m.Semester, &m.CreatedAt, &m.UpdatedAt,
			&m.Student.ID, &m.Student.Name, &m.Student.EnrollmentNumber, &m.Student.Course, &m.Student.Year)
		if err != nil {
			return nil, fmt.Errorf("error scanning marks: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// ListForStudent retrieves a student's rows, staff joined, newest academic
// year first then subject.
func (r *MarksRepository) ListForStudent(ctx context.Context, studentID int64, filter MarksFilter) ([]*models.Marks, error) {
	query := `
		SELECT ` + marksColumns + `,
			st.id, st.name, st.staff_code
		FROM marks m
		JOIN staff st ON st.id = m.staff_id
		WHERE m.student_id = $1`
	args := []any{studentID}

	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND m.subject = $%d", len(args))
	}
	if filter.AcademicYear != "" {
		args = append(args, filter.AcademicYear)
		query += fmt.Sprintf(" AND m.academic_year = $%d", len(args))
	}
	if filter.Semester != "" {
		args = append(args, filter.Semester)
		query += fmt.Sprintf(" AND m.semester = $%d", len(args))
	}
	query += " ORDER BY m.academic_year DESC, m.semester DESC, m.subject ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing marks: %w", err)
	}
	defer rows.Close()

	var records []*models.Marks
	for rows.Next() {
		m := &models.Marks{Staff: &models.StaffRef{}}
		err := rows.Scan(&m.ID, &m.StudentID, &m.StaffID, &m.Subject, &m.ExamType, &m.MarksObtained,
			&m.TotalMarks, &m.Grade, &m.Remarks, &m.AcademicYear, &m.Semester, &m.CreatedAt, &m.UpdatedAt,
			&m.Staff.ID, &m.Staff.Name, &m.Staff.StaffCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning marks: %w", err)
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// UpdateOwned applies a partial update scoped to the authoring staff member.
// A row that exists but belongs to another staff member is reported as not
// found, never as forbidden.
func (r *MarksRepository) UpdateOwned(ctx context.Context, id, staffID int64, fields map[string]any) (*models.Marks, error) {
	if len(fields) == 0 {
		return r.getOwned(ctx, id, staffID)
	}

	query := "UPDATE marks m SET "
	args := []any{}
	first := true
	for column, value := range fields {
		if !first {
			query += ", "
		}
		first = false
		args = append(args, value)
		query += fmt.Sprintf("%s = $%d", column, len(args))
	}
	args = append(args, id)
	query += fmt.Sprintf(", updated_at = CURRENT_TIMESTAMP WHERE m.id = $%d", len(args))
	args = append(args, staffID)
	query += fmt.Sprintf(" AND m.staff_id = $%d RETURNING %s", len(args), marksColumns)

	m := &models.Marks{}
	err := r.db.QueryRow(ctx, query, args...).
		Scan(&m.ID, &m.StudentID, &m.StaffID, &m.Subject, &m.ExamType, &m.MarksObtained,
			&m.TotalMarks, &m.Grade, &m.Remarks, &m.AcademicYear, &m.Semester, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksNotFound
		}
		return nil, fmt.Errorf("error updating marks: %w", err)
	}
	return m, nil
}

func (r *MarksRepository) getOwned(ctx context.Context, id, staffID int64) (*models.Marks, error) {
	m := &models.Marks{}
	err := r.db.QueryRow(ctx, `
		SELECT `+marksColumns+`
		FROM marks m
		WHERE m.id = $1 AND m.staff_id = $2`,
		id, staffID).
		Scan(&m.ID, &m.StudentID, &m.StaffID, &m.Subject, &m.ExamType, &m.MarksObtained,
			&m.TotalMarks, &m.Grade, &m.Remarks, &m.AcademicYear, &m.Semester, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksNotFound
		}
		return nil, fmt.Errorf("error fetching marks: %w", err)
	}
	return m, nil
}
