package services

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
	"github.com/rahulm/campusdesk/internal/pkg/validation"
)

// AttendanceStore is the attendance persistence surface used by the service.
type AttendanceStore interface {
	Create(ctx context.Context, a *models.Attendance) error
	ListForStaff(ctx context.Context, staffID int64, filter repositories.StaffFilter) ([]*models.Attendance, error)
	ListForStudent(ctx context.Context, studentID int64, filter repositories.StudentFilter) ([]*models.Attendance, error)
}

// AttendanceService handles marking and reporting attendance.
type AttendanceService struct {
	attendanceRepo AttendanceStore
	studentRepo    StudentStore
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo AttendanceStore, studentRepo StudentStore) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		logger:         logger.GetLogger().With().Str("service", "attendance").Logger(),
	}
}

// Mark records one attendance entry attributed to the calling staff member.
// The referenced student must exist; duplicate entries for the same
// student/date/subject are accepted as corrections on top of the history.
func (s *AttendanceService) Mark(ctx context.Context, staffID int64, req *dto.CreateAttendanceRequest) (*models.Attendance, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		StaffID:   staffID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
		Subject:   req.Subject,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListForStaff returns the calling staff member's own attendance entries,
// optionally narrowed by student, date and subject.
func (s *AttendanceService) ListForStaff(ctx context.Context, staffID int64, query *dto.StaffAttendanceQuery) ([]*models.Attendance, error) {
	filter := repositories.StaffFilter{
		StudentID: query.StudentID,
		Subject:   query.Subject,
	}
	if query.Date != "" {
		date, err := validation.ParseDate(query.Date)
		if err != nil {
			return nil, err
		}
		filter.Date = &date
	}
	return s.attendanceRepo.ListForStaff(ctx, staffID, filter)
}

// ListForStudent returns a student's own attendance entries. The date range
// applies only when both bounds are present.
func (s *AttendanceService) ListForStudent(ctx context.Context, studentID int64, query *dto.StudentAttendanceQuery) ([]*models.Attendance, error) {
	filter, err := studentAttendanceFilter(query)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListForStudent(ctx, studentID, filter)
}

// Summary aggregates a student's filtered attendance. Late entries count as
// attended, so percentage is (present+late)/total*100 rounded to two
// decimals; an empty set yields all zeroes.
func (s *AttendanceService) Summary(ctx context.Context, studentID int64, query *dto.StudentAttendanceQuery) (*models.AttendanceSummary, error) {
	filter, err := studentAttendanceFilter(query)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListForStudent(ctx, studentID, filter)
	if err != nil {
		return nil, err
	}

	summary := &models.AttendanceSummary{Total: len(records)}
	for _, record := range records {
		switch record.Status {
		case models.AttendancePresent:
			summary.Present++
		case models.AttendanceAbsent:
			summary.Absent++
		case models.AttendanceLate:
			summary.Late++
		}
	}
	if summary.Total > 0 {
		pct := float64(summary.Present+summary.Late) / float64(summary.Total) * 100
		summary.Percentage = math.Round(pct*100) / 100
	}
	return summary, nil
}

func studentAttendanceFilter(query *dto.StudentAttendanceQuery) (repositories.StudentFilter, error) {
	filter := repositories.StudentFilter{Subject: query.Subject}
	if query.StartDate != "" && query.EndDate != "" {
		start, err := validation.ParseDate(query.StartDate)
		if err != nil {
			return filter, err
		}
		end, err := validation.ParseDate(query.EndDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
		filter.EndDate = &end
	}
	return filter, nil
}
