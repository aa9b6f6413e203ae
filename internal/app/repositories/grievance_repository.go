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
)

const grievanceColumns = `g.id, g.student_id, g.subject, g.description, g.category, g.priority,
	g.status, g.response, g.responded_by, g.responded_at, g.created_at, g.updated_at`

// GrievanceRepository handles grievance database operations
type GrievanceRepository struct {
	db *pgxpool.Pool
}

// NewGrievanceRepository creates a new GrievanceRepository
func NewGrievanceRepository(db *pgxpool.Pool) *GrievanceRepository {
	return &GrievanceRepository{
		db: db,
	}
}

// Create inserts a grievance with default status pending
func (r *GrievanceRepository) Create(ctx context.Context, g *models.Grievance) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO grievances (student_id, subject, description, category, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at, updated_at`,
		g.StudentID, g.Subject, g.Description, g.Category, g.Priority).
		Scan(&g.ID, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating grievance: %w", err)
	}
	return nil
}

// GrievanceFilter narrows grievance listings
type GrievanceFilter struct {
	Status   string
	Priority string
}

// ListAll retrieves all grievances for the staff surface, student and
// responder joined, newest first.
func (r *GrievanceRepository) ListAll(ctx context.Context, filter GrievanceFilter) ([]*models.Grievance, error) {
	query := `
		SELECT ` + grievanceColumns + `,
			s.id, s.name, s.enrollment_number, s.course, s.year,
			st.id, st.name, st.staff_code
		FROM grievances g
		JOIN students s ON s.id = g.student_id
		LEFT JOIN staff st ON st.id = g.responded_by
		WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND g.status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND g.priority = $%d", len(args))
	}
	query += " ORDER BY g.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grievances: %w", err)
	}
	defer rows.Close()

	var records []*models.Grievance
	for rows.Next() {
		g := &models.Grievance{Student: &models.StudentRef{}}
		var responderID *int64
		var responderName, responderCode *string
		err := rows.Scan(&g.ID, &g.StudentID, &g.Subject, &g.Description, &g.Category, &g.Priority,
			&g.Status, &g.Response, &g.RespondedBy, &g.RespondedAt, &g.CreatedAt, &g.UpdatedAt,
			&g.Student.ID, &g.Student.Name, &g.Student.EnrollmentNumber, &g.Student.Course, &g.Student.Year,
			&responderID, &responderName, &responderCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning grievance: %w", err)
		}
		if responderID != nil {
			g.Responder = &models.StaffRef{ID: *responderID, Name: *responderName, StaffCode: *responderCode}
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

// ListForStudent retrieves a student's own grievances, responder joined,
// newest first.
func (r *GrievanceRepository) ListForStudent(ctx context.Context, studentID int64, filter GrievanceFilter) ([]*models.Grievance, error) {
	query := `
		SELECT ` + grievanceColumns + `,
			st.id, st.name, st.staff_code
		FROM grievances g
		LEFT JOIN staff st ON st.id = g.responded_by
		WHERE g.student_id = $1`
	args := []any{studentID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND g.status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND g.priority = $%d", len(args))
	}
	query += " ORDER BY g.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grievances: %w", err)
	}
	defer rows.Close()

	var records []*models.Grievance
	for rows.Next() {
		g := &models.Grievance{}
		var responderID *int64
		var responderName, responderCode *string
		err := rows.Scan(&g.ID, &g.StudentID, &g.Subject, &g.Description, &g.Category, &g.Priority,
			&g.Status, &g.Response, &g.RespondedBy, &g.RespondedAt, &g.CreatedAt, &g.UpdatedAt,
			&responderID, &responderName, &responderCode)
		if err != nil {
			return nil, fmt.Errorf("error scanning grievance: %w", err)
		}
		if responderID != nil {
			g.Responder = &models.StaffRef{ID: *responderID, Name: *responderName, StaffCode: *responderCode}
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

// GetForStudent retrieves one grievance scoped to its owner. A foreign id is
// not found.
func (r *GrievanceRepository) GetForStudent(ctx context.Context, id, studentID int64) (*models.Grievance, error) {
	g := &models.Grievance{}
	var responderID *int64
	var responderName, responderCode *string
	err := r.db.QueryRow(ctx, `
		SELECT `+grievanceColumns+`,
			st.id, st.name, st.staff_code
		FROM grievances g
		LEFT JOIN staff st ON st.id = g.responded_by
		WHERE g.id = $1 AND g.student_id = $2`,
		id, studentID).
		Scan(&g.ID, &g.StudentID, &g.Subject, &g.Description, &g.Category, &g.Priority,
			&g.Status, &g.Response, &g.RespondedBy, &g.RespondedAt, &g.CreatedAt, &g.UpdatedAt,
			&responderID, &responderName, &responderCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("error fetching grievance: %w", err)
	}
	if responderID != nil {
		g.Responder = &models.StaffRef{ID: *responderID, Name: *responderName, StaffCode: *responderCode}
	}
	return g, nil
}

// Respond records a staff response, setting responder and response time
func (r *GrievanceRepository) Respond(ctx context.Context, id int64, response string, status models.GrievanceStatus, staffID int64, respondedAt time.Time) (*models.Grievance, error) {
	g := &models.Grievance{}
	err := r.db.QueryRow(ctx, `
		UPDATE grievances g
		SET response = $1, status = $2, responded_by = $3, responded_at = $4, updated_at = CURRENT_TIMESTAMP
		WHERE g.id = $5
		RETURNING `+grievanceColumns,
		response, status, staffID, respondedAt, id).
		Scan(&g.ID, &g.StudentID, &g.Subject, &g.Description, &g.Category, &g.Priority,
			&g.Status, &g.Response, &g.RespondedBy, &g.RespondedAt, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGrievanceNotFound
		}
		return nil, fmt.Errorf("error responding to grievance: %w", err)
	}
	return g, nil
}
