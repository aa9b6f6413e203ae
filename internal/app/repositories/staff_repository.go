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

const staffColumns = `id, staff_code, name, email, department, designation, phone,
	date_of_birth, is_active, created_at, updated_at`

// StaffRepository handles staff profile database operations
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	s := &models.Staff{}
	err := row.Scan(&s.ID, &s.StaffCode, &s.Name, &s.Email, &s.Department, &s.Designation,
		&s.Phone, &s.DateOfBirth, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a staff profile and fills the generated fields
func (r *StaffRepository) Create(ctx context.Context, q Querier, staff *models.Staff) error {
	err := q.QueryRow(ctx, `
		INSERT INTO staff (staff_code, name, email, department, designation, phone, date_of_birth, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id, is_active, created_at, updated_at`,
		staff.StaffCode, staff.Name, staff.Email, staff.Department, staff.Designation,
		staff.Phone, staff.DateOfBirth).
		Scan(&staff.ID, &staff.IsActive, &staff.CreatedAt, &staff.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateError(err) {
			return apperrors.ErrStaffAlreadyExists
		}
		return fmt.Errorf("error creating staff: %w", err)
	}
	return nil
}

// GetByID retrieves a staff member by id
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	staff, err := scanStaff(r.db.QueryRow(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		WHERE id = $1`,
		id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error fetching staff: %w", err)
	}
	return staff, nil
}

// StaffCodeExists checks if a staff code is taken
func (r *StaffRepository) StaffCodeExists(ctx context.Context, staffCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM staff WHERE staff_code = $1)`,
		staffCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking staff code: %w", err)
	}
	return exists, nil
}

// Update applies a partial update and returns the updated row. Runs on q so
// the username sync can share its transaction.
func (r *StaffRepository) Update(ctx context.Context, q Querier, id int64, fields map[string]any) (*models.Staff, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	query := "UPDATE staff SET "
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
	query += fmt.Sprintf(", updated_at = CURRENT_TIMESTAMP WHERE id = $%d RETURNING %s", len(args), staffColumns)

	staff, err := scanStaff(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		if dberrors.IsDuplicateError(err) {
			return nil, apperrors.ErrStaffAlreadyExists
		}
		return nil, fmt.Errorf("error updating staff: %w", err)
	}
	return staff, nil
}

// DateOfBirth returns a staff member's date of birth
func (r *StaffRepository) DateOfBirth(ctx context.Context, id int64) (time.Time, error) {
	var dob time.Time
	err := r.db.QueryRow(ctx, `SELECT date_of_birth FROM staff WHERE id = $1`, id).Scan(&dob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.ErrStaffNotFound
		}
		return time.Time{}, fmt.Errorf("error fetching date of birth: %w", err)
	}
	return dob, nil
}
