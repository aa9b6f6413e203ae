package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/dberrors"
)

const accountColumns = `id, username, password_hash, role, student_id, staff_id, is_active, created_at, updated_at`

// AccountRepository handles account database operations
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Role, &a.StudentID, &a.StaffID,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an account. Runs on q so provisioning can pair it with the
// profile insert in one transaction.
func (r *AccountRepository) Create(ctx context.Context, q Querier, account *models.Account) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		INSERT INTO accounts (username, password_hash, role, student_id, staff_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		account.Username, account.PasswordHash, account.Role, account.StudentID, account.StaffID,
		account.IsActive).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1`,
		id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}
	return account, nil
}

// GetActiveByUsernameAndRole retrieves an active account matching both
// username and role exactly. A username that exists under another role is
// treated as not found.
func (r *AccountRepository) GetActiveByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE username = $1 AND role = $2 AND is_active = TRUE`,
		username, role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error fetching account: %w", err)
	}
	return account, nil
}

// List retrieves accounts, optionally filtered by role and active flag,
// newest first.
func (r *AccountRepository) List(ctx context.Context, role string, isActive *bool) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE 1=1`
	args := []any{}

	if role != "" {
		args = append(args, role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if isActive != nil {
		args = append(args, *isActive)
		query += fmt.Sprintf(" AND is_active = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// SetActive flips the active flag. Already-issued tokens stay valid; the
// authentication middleware re-checks this flag on every request.
func (r *AccountRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET is_active = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		active, id)
	if err != nil {
		return fmt.Errorf("error updating account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// SetActiveByStudentID flips the active flag of the account linked to a
// student profile. No-op when the student has no account.
func (r *AccountRepository) SetActiveByStudentID(ctx context.Context, q Querier, studentID int64, active bool) error {
	_, err := q.Exec(ctx, `
		UPDATE accounts
		SET is_active = $1, updated_at = CURRENT_TIMESTAMP
		WHERE student_id = $2 AND role = 'student'`,
		active, studentID)
	if err != nil {
		return fmt.Errorf("error updating linked account: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET password_hash = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// UpdateUsernameByStudentID syncs the account username after an enrollment
// number change.
func (r *AccountRepository) UpdateUsernameByStudentID(ctx context.Context, q Querier, studentID int64, username string) error {
	_, err := q.Exec(ctx, `
		UPDATE accounts
		SET username = $1, updated_at = CURRENT_TIMESTAMP
		WHERE student_id = $2 AND role = 'student'`,
		username, studentID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating username: %w", err)
	}
	return nil
}

// UpdateUsernameByStaffID syncs the account username after a staff code
// change.
func (r *AccountRepository) UpdateUsernameByStaffID(ctx context.Context, q Querier, staffID int64, username string) error {
	_, err := q.Exec(ctx, `
		UPDATE accounts
		SET username = $1, updated_at = CURRENT_TIMESTAMP
		WHERE staff_id = $2 AND role = 'staff'`,
		username, staffID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error updating username: %w", err)
	}
	return nil
}

// SuperAdminExists reports whether any superadmin account exists
func (r *AccountRepository) SuperAdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE role = 'superadmin')`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking superadmin: %w", err)
	}
	return exists, nil
}
