package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
)

// GrievanceStore is the grievance persistence surface used by the service.
type GrievanceStore interface {
	Create(ctx context.Context, g *models.Grievance) error
	ListAll(ctx context.Context, filter repositories.GrievanceFilter) ([]*models.Grievance, error)
	ListForStudent(ctx context.Context, studentID int64, filter repositories.GrievanceFilter) ([]*models.Grievance, error)
	GetForStudent(ctx context.Context, id, studentID int64) (*models.Grievance, error)
	Respond(ctx context.Context, id int64, response string, status models.GrievanceStatus, staffID int64, respondedAt time.Time) (*models.Grievance, error)
}

// GrievanceService handles the grievance workflow.
type GrievanceService struct {
	grievanceRepo GrievanceStore
	logger        zerolog.Logger
}

// NewGrievanceService creates a new GrievanceService.
func NewGrievanceService(grievanceRepo GrievanceStore) *GrievanceService {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		logger:        logger.GetLogger().With().Str("service", "grievance").Logger(),
	}
}

// File creates a grievance for the calling student. Priority defaults to
// medium when omitted; status always starts pending.
func (s *GrievanceService) File(ctx context.Context, studentID int64, req *dto.CreateGrievanceRequest) (*models.Grievance, error) {
	priority := models.GrievancePriority(req.Priority)
	if priority == "" {
		priority = models.PriorityMedium
	}

	grievance := &models.Grievance{
		StudentID:   studentID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      models.GrievancePending,
	}
	if err := s.grievanceRepo.Create(ctx, grievance); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("studentId", studentID).Str("category", grievance.Category).Msg("Grievance filed")
	return grievance, nil
}

// ListAll returns every grievance, newest first, for the staff view.
func (s *GrievanceService) ListAll(ctx context.Context, query *dto.GrievanceQuery) ([]*models.Grievance, error) {
	return s.grievanceRepo.ListAll(ctx, repositories.GrievanceFilter{
		Status:   query.Status,
		Priority: query.Priority,
	})
}

// ListForStudent returns the calling student's own grievances.
func (s *GrievanceService) ListForStudent(ctx context.Context, studentID int64, query *dto.GrievanceQuery) ([]*models.Grievance, error) {
	return s.grievanceRepo.ListForStudent(ctx, studentID, repositories.GrievanceFilter{
		Status:   query.Status,
		Priority: query.Priority,
	})
}

// GetForStudent returns one grievance only when it belongs to the calling
// student; anything else is not found.
func (s *GrievanceService) GetForStudent(ctx context.Context, id, studentID int64) (*models.Grievance, error) {
	return s.grievanceRepo.GetForStudent(ctx, id, studentID)
}

// Respond records a staff response. Any staff member may respond to any
// grievance, overwriting a previous response and responder attribution.
func (s *GrievanceService) Respond(ctx context.Context, id, staffID int64, req *dto.RespondGrievanceRequest) (*models.Grievance, error) {
	grievance, err := s.grievanceRepo.Respond(ctx, id, req.Response, models.GrievanceStatus(req.Status), staffID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("grievanceId", id).Int64("staffId", staffID).Str("status", req.Status).Msg("Grievance response recorded")
	return grievance, nil
}
