// Package services holds the business logic between the HTTP controllers and
// the repositories.
//
// Services defined in this package:
//   - AuthService: login, registration and superadmin provisioning
//   - AccountService: superadmin account administration
//   - StudentService: student profile management
//   - StaffService: staff profile management
//   - AttendanceService: attendance marking, listing and summary
//   - MarksService: marks entry, listing, owner-scoped update and summary
//   - GrievanceService: grievance filing, listing and staff responses
package services

import (
	"context"

	"github.com/rahulm/campusdesk/internal/db"
)

// TxRunner executes a function within a database transaction. Injected so
// tests can run service flows against in-memory stores without a pool.
type TxRunner func(ctx context.Context, fn db.TransactionFn) error

// PassthroughTxRunner runs fn without a transaction. Test use only.
func PassthroughTxRunner(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}
