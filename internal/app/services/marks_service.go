package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
)

// MarksStore is the marks persistence surface used by the service.
type MarksStore interface {
	Create(ctx context.Context, m *models.Marks) error
	ListForStaff(ctx context.Context, staffID int64, filter repositories.MarksFilter) ([]*models.Marks, error)
	ListForStudent(ctx context.Context, studentID int64, filter repositories.MarksFilter) ([]*models.Marks, error)
	UpdateOwned(ctx context.Context, id, staffID int64, fields map[string]any) (*models.Marks, error)
}

// MarksService handles exam result entry and reporting.
type MarksService struct {
	marksRepo   MarksStore
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewMarksService creates a new MarksService.
func NewMarksService(marksRepo MarksStore, studentRepo StudentStore) *MarksService {
	return &MarksService{
		marksRepo:   marksRepo,
		studentRepo: studentRepo,
		logger:      logger.GetLogger().With().Str("service", "marks").Logger(),
	}
}

// Add records one marks entry attributed to the calling staff member.
func (s *MarksService) Add(ctx context.Context, staffID int64, req *dto.CreateMarksRequest) (*models.Marks, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	record := &models.Marks{
		StudentID:     req.StudentID,
		StaffID:       staffID,
		Subject:       req.Subject,
		ExamType:      req.ExamType,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		Grade:         req.Grade,
		Remarks:       req.Remarks,
		AcademicYear:  req.AcademicYear,
		Semester:      req.Semester,
	}
	if err := s.marksRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListForStaff returns marks rows authored by the calling staff member.
func (s *MarksService) ListForStaff(ctx context.Context, staffID int64, query *dto.StaffMarksQuery) ([]*models.Marks, error) {
	filter := repositories.MarksFilter{
		StudentID:    query.StudentID,
		Subject:      query.Subject,
		AcademicYear: query.AcademicYear,
		Semester:     query.Semester,
	}
	return s.marksRepo.ListForStaff(ctx, staffID, filter)
}

// ListForStudent returns a student's own marks rows.
func (s *MarksService) ListForStudent(ctx context.Context, studentID int64, query *dto.StudentMarksQuery) ([]*models.Marks, error) {
	filter := repositories.MarksFilter{
		Subject:      query.Subject,
		AcademicYear: query.AcademicYear,
		Semester:     query.Semester,
	}
	return s.marksRepo.ListForStudent(ctx, studentID, filter)
}

// Update applies a partial update to a marks row, restricted to rows the
// calling staff member created. Rows owned by other staff are reported as
// not found rather than forbidden.
func (s *MarksService) Update(ctx context.Context, id, staffID int64, req *dto.UpdateMarksRequest) (*models.Marks, error) {
	fields := make(map[string]any)
	if req.StudentID != nil {
		if _, err := s.studentRepo.GetByID(ctx, *req.StudentID); err != nil {
			return nil, err
		}
		fields["student_id"] = *req.StudentID
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.ExamType != nil {
		fields["exam_type"] = *req.ExamType
	}
	if req.MarksObtained != nil {
		fields["marks_obtained"] = *req.MarksObtained
	}
	if req.TotalMarks != nil {
		fields["total_marks"] = *req.TotalMarks
	}
	if req.Grade != nil {
		fields["grade"] = *req.Grade
	}
	if req.Remarks != nil {
		fields["remarks"] = *req.Remarks
	}
	if req.AcademicYear != nil {
		fields["academic_year"] = *req.AcademicYear
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}
	return s.marksRepo.UpdateOwned(ctx, id, staffID, fields)
}

// Summary aggregates a student's filtered marks rows: counts, obtained and
// possible totals, and the overall percentage rounded to two decimals. An
// empty set yields all zeroes.
func (s *MarksService) Summary(ctx context.Context, studentID int64, query *dto.StudentMarksQuery) (*models.MarksSummary, error) {
	records, err := s.ListForStudent(ctx, studentID, query)
	if err != nil {
		return nil, err
	}

	summary := &models.MarksSummary{TotalSubjects: len(records)}
	for _, record := range records {
		summary.TotalMarks += record.MarksObtained
		summary.TotalPossible += record.TotalMarks
	}
	if summary.TotalPossible > 0 {
		avg := summary.TotalMarks / summary.TotalPossible * 100
		summary.Average = math.Round(avg*100) / 100
	}
	return summary, nil
}
