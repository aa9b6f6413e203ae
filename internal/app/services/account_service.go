package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
	"github.com/rahulm/campusdesk/internal/pkg/validation"
)

// AccountService handles superadmin account administration.
type AccountService struct {
	accountRepo AccountStore
	studentRepo StudentStore
	staffRepo   StaffStore
	logger      zerolog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo AccountStore, studentRepo StudentStore, staffRepo StaffStore) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		logger:      logger.GetLogger().With().Str("service", "account").Logger(),
	}
}

// List returns accounts filtered by role and active flag, newest first,
// each with its linked profile populated.
func (s *AccountService) List(ctx context.Context, query *dto.AccountListQuery) ([]dto.AccountResponse, error) {
	accounts, err := s.accountRepo.List(ctx, query.Role, query.IsActive)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		if err := s.attachProfile(ctx, account); err != nil {
			return nil, err
		}
		responses = append(responses, dto.NewAccountResponse(account))
	}
	return responses, nil
}

// Get returns one account with its profile populated.
func (s *AccountService) Get(ctx context.Context, id int64) (*dto.AccountResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachProfile(ctx, account); err != nil {
		return nil, err
	}
	resp := dto.NewAccountResponse(account)
	return &resp, nil
}

// Deactivate flips the account inactive. Outstanding tokens keep their
// signature validity but fail the per-request active check immediately.
func (s *AccountService) Deactivate(ctx context.Context, id int64) error {
	if err := s.accountRepo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info().Int64("accountId", id).Msg("Account deactivated")
	return nil
}

// Activate flips the account active again.
func (s *AccountService) Activate(ctx context.Context, id int64) error {
	if err := s.accountRepo.SetActive(ctx, id, true); err != nil {
		return err
	}
	s.logger.Info().Int64("accountId", id).Msg("Account activated")
	return nil
}

// ResetPassword resets the account's password to the linked profile's date
// of birth in YYYY-MM-DD form. Accounts with no profile (superadmin) cannot
// be reset this way.
func (s *AccountService) ResetPassword(ctx context.Context, id int64) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var dob time.Time
	switch {
	case account.StudentID != nil:
		dob, err = s.studentRepo.DateOfBirth(ctx, *account.StudentID)
	case account.StaffID != nil:
		dob, err = s.staffRepo.DateOfBirth(ctx, *account.StaffID)
	default:
		return apperrors.ErrDateOfBirthMissing
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) || errors.Is(err, apperrors.ErrStaffNotFound) {
			return apperrors.ErrDateOfBirthMissing
		}
		return err
	}

	passwordHash, err := auth.HashPassword(validation.FormatDate(dob))
	if err != nil {
		return err
	}
	if err := s.accountRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
		return err
	}
	s.logger.Info().Int64("accountId", id).Msg("Password reset to date of birth")
	return nil
}

func (s *AccountService) attachProfile(ctx context.Context, account *models.Account) error {
	switch {
	case account.StudentID != nil:
		student, err := s.studentRepo.GetByID(ctx, *account.StudentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil
			}
			return err
		}
		account.Student = student
	case account.StaffID != nil:
		staff, err := s.staffRepo.GetByID(ctx, *account.StaffID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStaffNotFound) {
				return nil
			}
			return err
		}
		account.Staff = staff
	}
	return nil
}
