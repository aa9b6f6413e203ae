package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
	"github.com/rahulm/campusdesk/internal/pkg/validation"
)

// StaffService handles staff profile management.
type StaffService struct {
	staffRepo   StaffStore
	accountRepo AccountStore
	runInTx     TxRunner
	logger      zerolog.Logger
}

// NewStaffService creates a new StaffService.
func NewStaffService(staffRepo StaffStore, accountRepo AccountStore, runInTx TxRunner) *StaffService {
	return &StaffService{
		staffRepo:   staffRepo,
		accountRepo: accountRepo,
		runInTx:     runInTx,
		logger:      logger.GetLogger().With().Str("service", "staff").Logger(),
	}
}

// Get returns one staff member by id.
func (s *StaffService) Get(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// Update applies a partial update. When the staff code changes, the linked
// account's username is renamed in the same transaction.
func (s *StaffService) Update(ctx context.Context, id int64, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	fields := make(map[string]any)
	if req.StaffCode != nil {
		fields["staff_code"] = *req.StaffCode
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob, err := validation.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid date of birth")
		}
		fields["date_of_birth"] = dob
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return s.staffRepo.GetByID(ctx, id)
	}

	var updated *models.Staff
	err := s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		updated, err = s.staffRepo.Update(ctx, tx, id, fields)
		if err != nil {
			return err
		}
		if req.StaffCode != nil {
			if err := s.accountRepo.UpdateUsernameByStaffID(ctx, tx, id, *req.StaffCode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
