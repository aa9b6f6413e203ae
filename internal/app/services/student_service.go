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

// StudentService handles student profile management.
type StudentService struct {
	studentRepo StudentStore
	accountRepo AccountStore
	runInTx     TxRunner
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo StudentStore, accountRepo AccountStore, runInTx TxRunner) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		accountRepo: accountRepo,
		runInTx:     runInTx,
		logger:      logger.GetLogger().With().Str("service", "student").Logger(),
	}
}

// List returns students matching the free-text search, sorted by the
// requested column. Unknown sort columns fall back to the default order.
func (s *StudentService) List(ctx context.Context, query *dto.StudentListQuery) ([]*models.Student, error) {
	return s.studentRepo.List(ctx, query.Q, query.SortBy, query.Order)
}

// Get returns one student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Create adds a bare student profile with no linked login account. Used by
// the open student CRUD surface; registration flows go through AuthService.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.EnrollmentNumberExists(ctx, req.EnrollmentNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentAlreadyExists
	}

	dob, err := validation.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date of birth")
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
	err = s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.Create(ctx, tx, student)
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies a partial update. When the enrollment number changes, the
// linked account's username is renamed in the same transaction so login
// identifiers never drift from the profile.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	fields := make(map[string]any)
	if req.EnrollmentNumber != nil {
		fields["enrollment_number"] = *req.EnrollmentNumber
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.DateOfBirth != nil {
		dob, err := validation.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid date of birth")
		}
		fields["date_of_birth"] = dob
	}
	if req.Course != nil {
		fields["course"] = *req.Course
	}
	if req.Year != nil {
		fields["year"] = *req.Year
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.ParentName != nil {
		fields["parent_name"] = *req.ParentName
	}
	if req.ParentPhone != nil {
		fields["parent_phone"] = *req.ParentPhone
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		return s.studentRepo.GetByID(ctx, id)
	}

	var updated *models.Student
	err := s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		updated, err = s.studentRepo.Update(ctx, tx, id, fields)
		if err != nil {
			return err
		}
		if req.EnrollmentNumber != nil {
			if err := s.accountRepo.UpdateUsernameByStudentID(ctx, tx, id, *req.EnrollmentNumber); err != nil {
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

// Disable soft-deletes the student: the profile is marked inactive and the
// linked account loses login access, while attendance, marks and grievance
// history stay in place.
func (s *StudentService) Disable(ctx context.Context, id int64) (*models.Student, error) {
	var updated *models.Student
	err := s.runInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		updated, err = s.studentRepo.SetStatus(ctx, tx, id, models.StudentInactive)
		if err != nil {
			return err
		}
		return s.accountRepo.SetActiveByStudentID(ctx, tx, id, false)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("studentId", id).Msg("Student disabled")
	return updated, nil
}

// Delete removes the student row permanently. The linked account, attendance,
// marks and grievances go with it via ON DELETE CASCADE.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn().Int64("studentId", id).Msg("Student deleted")
	return nil
}
