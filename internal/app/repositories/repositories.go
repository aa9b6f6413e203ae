package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx.
// Repository methods that participate in multi-row write pairs accept it so
// services can run them inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles all repositories
type Repositories struct {
	AccountRepository    *AccountRepository
	StudentRepository    *StudentRepository
	StaffRepository      *StaffRepository
	AttendanceRepository *AttendanceRepository
	MarksRepository      *MarksRepository
	GrievanceRepository  *GrievanceRepository
}

// NewRepositories creates all repositories sharing one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AccountRepository:    NewAccountRepository(db),
		StudentRepository:    NewStudentRepository(db),
		StaffRepository:      NewStaffRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		MarksRepository:      NewMarksRepository(db),
		GrievanceRepository:  NewGrievanceRepository(db),
	}
}
