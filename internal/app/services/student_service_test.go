package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
)

func newTestStudentService(t *testing.T) (*StudentService, *AuthService, *fakeAccountStore, *fakeStudentStore) {
	t.Helper()
	authSvc, accounts, students, _ := newTestAuthService()
	svc := NewStudentService(students, accounts, PassthroughTxRunner)
	return svc, authSvc, accounts, students
}

func registerStudent(t *testing.T, authSvc *AuthService, enrollment string) (*models.Student, *models.Account) {
	t.Helper()
	student, account, err := authSvc.RegisterStudent(context.Background(), &dto.RegisterStudentRequest{
		EnrollmentNumber: enrollment,
		Name:             "Asha Verma",
		Email:            "asha@example.edu",
		DateOfBirth:      "2000-01-01",
		Course:           "B.Tech CSE",
		Year:             2,
	})
	require.NoError(t, err)
	return student, account
}

func TestCreateStudentWithoutAccount(t *testing.T) {
	svc, _, accounts, _ := newTestStudentService(t)

	student, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNumber: "E9",
		Name:             "Meera Nair",
		Email:            "meera@example.edu",
		DateOfBirth:      "2001-05-20",
		Course:           "B.Sc Physics",
		Year:             1,
	})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.Equal(t, models.StudentActive, student.Status)
	assert.Empty(t, accounts.accounts)

	_, err = svc.Create(context.Background(), &dto.CreateStudentRequest{
		EnrollmentNumber: "E9",
		Name:             "Someone Else",
		Email:            "other@example.edu",
		DateOfBirth:      "2001-05-20",
		Course:           "B.Sc Physics",
		Year:             1,
	})
	assert.True(t, errors.Is(err, apperrors.ErrStudentAlreadyExists))
}

func TestUpdateStudentSyncsUsername(t *testing.T) {
	svc, authSvc, accounts, _ := newTestStudentService(t)
	ctx := context.Background()

	student, account := registerStudent(t, authSvc, "E1")

	newEnrollment := "E1-NEW"
	newYear := 3
	updated, err := svc.Update(ctx, student.ID, &dto.UpdateStudentRequest{
		EnrollmentNumber: &newEnrollment,
		Year:             &newYear,
	})
	require.NoError(t, err)
	assert.Equal(t, "E1-NEW", updated.EnrollmentNumber)
	assert.Equal(t, 3, updated.Year)

	stored, err := accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "E1-NEW", stored.Username)

	// Login keyed by the new username only.
	_, err = authSvc.Login(ctx, &dto.LoginRequest{Username: "E1", Password: "2000-01-01", Role: "student"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	_, err = authSvc.Login(ctx, &dto.LoginRequest{Username: "E1-NEW", Password: "2000-01-01", Role: "student"})
	assert.NoError(t, err)
}

func TestUpdateStudentUnknownID(t *testing.T) {
	svc, _, _, _ := newTestStudentService(t)

	name := "New Name"
	_, err := svc.Update(context.Background(), 404, &dto.UpdateStudentRequest{Name: &name})
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}

func TestDisableStudentRevokesLogin(t *testing.T) {
	svc, authSvc, accounts, students := newTestStudentService(t)
	ctx := context.Background()

	student, account := registerStudent(t, authSvc, "E1")

	updated, err := svc.Disable(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentInactive, updated.Status)

	stored, err := accounts.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	_, err = authSvc.Login(ctx, &dto.LoginRequest{Username: "E1", Password: "2000-01-01", Role: "student"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	// Profile and history remain.
	_, err = students.GetByID(ctx, student.ID)
	assert.NoError(t, err)
}

func TestDeleteStudentIsHard(t *testing.T) {
	svc, authSvc, _, students := newTestStudentService(t)
	ctx := context.Background()

	student, _ := registerStudent(t, authSvc, "E1")

	require.NoError(t, svc.Delete(ctx, student.ID))
	_, err := students.GetByID(ctx, student.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))

	err = svc.Delete(ctx, student.ID)
	assert.True(t, errors.Is(err, apperrors.ErrStudentNotFound))
}
