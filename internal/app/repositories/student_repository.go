package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/dberrors"
)

const studentColumns = `id, enrollment_number, name, email, date_of_birth, course, year,
	phone, address, parent_name, parent_phone, status, created_at, updated_at`

// studentSortColumns whitelists sortable keys for the list endpoint
var studentSortColumns = map[string]string{
	"name":             "name",
	"email":            "email",
	"course":           "course",
	"year":             "year",
	"enrollmentNumber": "enrollment_number",
	"createdAt":        "created_at",
}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.EnrollmentNumber, &s.Name, &s.Email, &s.DateOfBirth, &s.Course,
		&s.Year, &s.Phone, &s.Address, &s.ParentName, &s.ParentPhone, &s.Status,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a student profile and fills the generated fields
func (r *StudentRepository) Create(ctx context.Context, q Querier, student *models.Student) error {
	err := q.QueryRow(ctx, `
		INSERT INTO students (enrollment_number, name, email, date_of_birth, course, year,
			phone, address, parent_name, parent_phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, status, created_at, updated_at`,
		student.EnrollmentNumber, student.Name, student.Email, student.DateOfBirth, student.Course,
		student.Year, student.Phone, student.Address, student.ParentName, student.ParentPhone,
		models.StudentActive).
		Scan(&student.ID, &student.Status, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`,
		id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error fetching student: %w", err)
	}
	return student, nil
}

// EnrollmentNumberExists checks if an enrollment number is taken
func (r *StudentRepository) EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE enrollment_number = $1)`,
		enrollmentNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment number: %w", err)
	}
	return exists, nil
}

// List retrieves students with optional substring search over name, email,
// course and enrollment number, sorted by a whitelisted key.
func (r *StudentRepository) List(ctx context.Context, search, sortBy, order string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`
	args := []any{}

	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR course ILIKE $1 OR enrollment_number ILIKE $1`
	}

	column, ok := studentSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", column, direction)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// studentUpdate holds the resolved column values for a partial update
type studentUpdate struct {
	column string
	value  any
}

// Update applies a partial update and returns the updated row. Runs on q so
// the username sync can share its transaction.
func (r *StudentRepository) Update(ctx context.Context, q Querier, id int64, fields map[string]any) (*models.Student, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	var updates []studentUpdate
	for column, value := range fields {
		updates = append(updates, studentUpdate{column: column, value: value})
	}

	query := "UPDATE students SET "
	args := []any{}
	for i, u := range updates {
		if i > 0 {
			query += ", "
		}
		args = append(args, u.value)
		query += fmt.Sprintf("%s = $%d", u.column, len(args))
	}
	args = append(args, id)
	query += fmt.Sprintf(", updated_at = CURRENT_TIMESTAMP WHERE id = $%d RETURNING %s", len(args), studentColumns)

	student, err := scanStudent(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateError(err) {
			return nil, apperrors.ErrStudentAlreadyExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	return student, nil
}

// SetStatus marks a student active or inactive
func (r *StudentRepository) SetStatus(ctx context.Context, q Querier, id int64, status models.StudentStatus) (*models.Student, error) {
	student, err := scanStudent(q.QueryRow(ctx, `
		UPDATE students
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING `+studentColumns,
		status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student status: %w", err)
	}
	return student, nil
}

// Delete removes a student row permanently. Only the generic CRUD surface
// uses this; every other "delete" is soft.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DateOfBirth returns a student's date of birth
func (r *StudentRepository) DateOfBirth(ctx context.Context, id int64) (time.Time, error) {
	var dob time.Time
	err := r.db.QueryRow(ctx, `SELECT date_of_birth FROM students WHERE id = $1`, id).Scan(&dob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.ErrStudentNotFound
		}
		return time.Time{}, fmt.Errorf("error fetching date of birth: %w", err)
	}
	return dob, nil
}
