package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
)

func newTestAttendanceService(t *testing.T) (*AttendanceService, *fakeAttendanceStore, *models.Student) {
	t.Helper()
	attendance := newFakeAttendanceStore()
	students := newFakeStudentStore()
	student := &models.Student{
		EnrollmentNumber: "E1",
		Name:             "Asha Verma",
		Email:            "asha@example.edu",
		DateOfBirth:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		Course:           "B.Tech CSE",
		Year:             2,
		Status:           models.StudentActive,
	}
	require.NoError(t, students.Create(context.Background(), nil, student))
	return NewAttendanceService(attendance, students), attendance, student
}

func markAttendance(t *testing.T, svc *AttendanceService, studentID int64, date, status string) {
	t.Helper()
	_, err := svc.Mark(context.Background(), 1, &dto.CreateAttendanceRequest{
		StudentID: studentID,
		Date:      date,
		Status:    status,
		Subject:   "Mathematics",
	})
	require.NoError(t, err)
}

func TestMarkAttendanceUnknownStudent(t *testing.T) {
	svc, _, _ := newTestAttendanceService(t)

	_, err := svc.Mark(context.Background(), 1, &dto.CreateAttendanceRequest{
		StudentID: 999,
		Date:      "2026-02-02",
		Status:    "present",
		Subject:   "Mathematics",
	})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestAttendanceSummaryCountsLateAsAttended(t *testing.T) {
	svc, _, student := newTestAttendanceService(t)

	markAttendance(t, svc, student.ID, "2026-02-02", "present")
	markAttendance(t, svc, student.ID, "2026-02-03", "present")
	markAttendance(t, svc, student.ID, "2026-02-04", "absent")
	markAttendance(t, svc, student.ID, "2026-02-05", "late")

	summary, err := svc.Summary(context.Background(), student.ID, &dto.StudentAttendanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 75.0, summary.Percentage)
}

func TestAttendanceSummaryEmpty(t *testing.T) {
	svc, _, student := newTestAttendanceService(t)

	summary, err := svc.Summary(context.Background(), student.ID, &dto.StudentAttendanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, &models.AttendanceSummary{}, summary)
}

func TestAttendanceSummaryRoundsToTwoDecimals(t *testing.T) {
	svc, _, student := newTestAttendanceService(t)

	markAttendance(t, svc, student.ID, "2026-02-02", "present")
	markAttendance(t, svc, student.ID, "2026-02-03", "absent")
	markAttendance(t, svc, student.ID, "2026-02-04", "absent")

	summary, err := svc.Summary(context.Background(), student.ID, &dto.StudentAttendanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, 33.33, summary.Percentage)
}

func TestAttendanceDateRangeRequiresBothBounds(t *testing.T) {
	svc, _, student := newTestAttendanceService(t)

	markAttendance(t, svc, student.ID, "2026-02-02", "present")
	markAttendance(t, svc, student.ID, "2026-03-02", "present")

	// Only one bound present, so the range is ignored.
	records, err := svc.ListForStudent(context.Background(), student.ID, &dto.StudentAttendanceQuery{
		StartDate: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = svc.ListForStudent(context.Background(), student.ID, &dto.StudentAttendanceQuery{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAttendanceListScopedToStaff(t *testing.T) {
	svc, store, student := newTestAttendanceService(t)

	markAttendance(t, svc, student.ID, "2026-02-02", "present")
	_, err := svc.Mark(context.Background(), 2, &dto.CreateAttendanceRequest{
		StudentID: student.ID,
		Date:      "2026-02-02",
		Status:    "absent",
		Subject:   "Physics",
	})
	require.NoError(t, err)
	require.Len(t, store.records, 2)

	records, err := svc.ListForStaff(context.Background(), 1, &dto.StaffAttendanceQuery{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].StaffID)
}
