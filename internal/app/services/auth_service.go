package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
	"github.com/rahulm/campusdesk/internal/pkg/validation"
)

// AccountStore is the account persistence surface used by the services.
type AccountStore interface {
	Create(ctx context.Context, q repositories.Querier, account *models.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetActiveByUsernameAndRole(ctx context.Context, username string, role models.Role) (*models.Account, error)
	List(ctx context.Context, role string, isActive *bool) ([]*models.Account, error)
	SetActive(ctx context.Context, id int64, active bool) error
	SetActiveByStudentID(ctx context.Context, q repositories.Querier, studentID int64, active bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateUsernameByStudentID(ctx context.Context, q repositories.Querier, studentID int64, username string) error
	UpdateUsernameByStaffID(ctx context.Context, q repositories.Querier, staffID int64, username string) error
	SuperAdminExists(ctx context.Context) (bool, error)
}

// StudentStore is the student persistence surface used by the services.
type StudentStore interface {
	Create(ctx context.Context, q repositories.Querier, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error)
	List(ctx context.Context, search, sortBy, order string) ([]*models.Student, error)
	Update(ctx context.Context, q repositories.Querier, id int64, fields map[string]any) (*models.Student, error)
	SetStatus(ctx context.Context, q repositories.Querier, id int64, status models.StudentStatus) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	DateOfBirth(ctx context.Context, id int64) (time.Time, error)
}

// StaffStore is the staff persistence surface used by the services.
type StaffStore interface {
	Create(ctx context.Context, q repositories.Querier, staff *models.Staff) error
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	StaffCodeExists(ctx context.Context, staffCode string) (bool, error)
	Update(ctx context.Context, q repositories.Querier, id int64, fields map[string]any) (*models.Staff, error)
	DateOfBirth(ctx context.Context, id int64) (time.Time, error)
}

// AuthService handles login and account provisioning.
type AuthService struct {
	accountRepo AccountStore
	studentRepo StudentStore
	staffRepo   StaffStore
	jwtService  *auth.JWTService
	db          repositories.Querier
	runInTx     TxRunner
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	accountRepo AccountStore,
	studentRepo StudentStore,
	staffRepo StaffStore,
	jwtService *auth.JWTService,
	db repositories.Querier,
	runInTx TxRunner,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
		jwtService:  jwtService,
		db:          db,
		runInTx:     runInTx,
		logger:      logger.GetLogger().With().Str("service", "auth").Logger(),
	}
}

// Login verifies the username/password/role triple and issues a token.
// Unknown username, role mismatch, wrong password and deactivated accounts
// all collapse into the same ErrInvalidCredentials so callers cannot probe
// which usernames exist.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.accountRepo.GetActiveByUsernameAndRole(ctx, req.Username, models.Role(req.Role))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.attachProfile(ctx, account); err != nil {
		return nil, err
	}

	token, _, err := s.jwtService.GenerateToken(account.ID, account.Role)
	if err != nil {
		s.logger.Error().Err(err).Int64("accountId", account.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.AuthUser{
			ID:      account.ID,
			Role:    account.Role,
			Profile: account.Profile(),
		},
	}, nil
}

// RegisterStudent creates a student profile plus its login account in one
// transaction. The username is the enrollment number and the initial
// password is the date of birth in YYYY-MM-DD form.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, *models.Account, error) {
	exists, err := s.studentRepo.EnrollmentNumberExists(ctx, req.EnrollmentNumber)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrStudentAlreadyExists
	}

	dob, err := validation.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("invalid date of birth")
	}

	passwordHash, err := auth.HashPassword(req.DateOfBirth)
	if err != nil {
		return nil, nil, err
	}

	student := &models.Student{
		EnrollmentNumber: req.EnrollmentNumber,
		Name:             req.Name,
		Email:            req.Email,
		DateOfBirth:      dob,
		Course:           req.Course,
		Year:             req.Year,
		Phone:            req.Phone,
		Address:          req.Address,
		ParentName:       req.ParentName,
		ParentPhone:      req.ParentPhone,
		Status:           models.StudentActive,
	}
	account := &models.Account{
		Username:     req.EnrollmentNumber,
		PasswordHash: passwordHash,
		Role:         models.RoleStudent,
		IsActive:     true,
	}

	err = s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.studentRepo.Create(ctx, tx, student); err != nil {
			return err
		}
		account.StudentID = &student.ID
		accountID, err := s.accountRepo.Create(ctx, tx, account)
		if err != nil {
			return err
		}
		account.ID = accountID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("enrollmentNumber", student.EnrollmentNumber).Int64("studentId", student.ID).Msg("Student registered")
	return student, account, nil
}

// RegisterStaff creates a staff profile plus its login account in one
// transaction. The username is the staff code and the initial password is
// the date of birth in YYYY-MM-DD form.
func (s *AuthService) RegisterStaff(ctx context.Context, req *dto.RegisterStaffRequest) (*models.Staff, *models.Account, error) {
	exists, err := s.staffRepo.StaffCodeExists(ctx, req.StaffCode)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, apperrors.ErrStaffAlreadyExists
	}

	dob, err := validation.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("invalid date of birth")
	}

	passwordHash, err := auth.HashPassword(req.DateOfBirth)
	if err != nil {
		return nil, nil, err
	}

	staff := &models.Staff{
		StaffCode:   req.StaffCode,
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		Designation: req.Designation,
		Phone:       req.Phone,
		DateOfBirth: dob,
		IsActive:    true,
	}
	account := &models.Account{
		Username:     req.StaffCode,
		PasswordHash: passwordHash,
		Role:         models.RoleStaff,
		IsActive:     true,
	}

	err = s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.staffRepo.Create(ctx, tx, staff); err != nil {
			return err
		}
		account.StaffID = &staff.ID
		accountID, err := s.accountRepo.Create(ctx, tx, account)
		if err != nil {
			return err
		}
		account.ID = accountID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("staffId", staff.StaffCode).Int64("id", staff.ID).Msg("Staff registered")
	return staff, account, nil
}

// CreateSuperAdmin creates the single superadmin account. Fails with
// ErrSuperAdminExists once one is present, regardless of username.
func (s *AuthService) CreateSuperAdmin(ctx context.Context, req *dto.CreateSuperAdminRequest) (*models.Account, error) {
	exists, err := s.accountRepo.SuperAdminExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrSuperAdminExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}
	accountID, err := s.accountRepo.Create(ctx, s.db, account)
	if err != nil {
		return nil, err
	}
	account.ID = accountID

	s.logger.Info().Str("username", account.Username).Msg("Superadmin account created")
	return account, nil
}

// attachProfile loads the linked profile row onto the account.
func (s *AuthService) attachProfile(ctx context.Context, account *models.Account) error {
	switch {
	case account.StudentID != nil:
		student, err := s.studentRepo.GetByID(ctx, *account.StudentID)
		if err != nil {
			return err
		}
		account.Student = student
	case account.StaffID != nil:
		staff, err := s.staffRepo.GetByID(ctx, *account.StaffID)
		if err != nil {
			return err
		}
		account.Staff = staff
	}
	return nil
}
