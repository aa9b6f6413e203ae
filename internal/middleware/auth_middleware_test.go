package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
)

type stubAccountLoader struct {
	accounts map[int64]*models.Account
	err      error
}

func (s *stubAccountLoader) GetByID(_ context.Context, id int64) (*models.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}

type stubStudentLoader struct {
	students map[int64]*models.Student
	err      error
}

func (s *stubStudentLoader) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

type stubStaffLoader struct {
	staff map[int64]*models.Staff
}

func (s *stubStaffLoader) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	staff, ok := s.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return staff, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *stubAccountLoader, *stubStudentLoader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusdesk-test",
	})

	studentID := int64(10)
	accounts := &stubAccountLoader{accounts: map[int64]*models.Account{
		1: {ID: 1, Username: "E1", Role: models.RoleStudent, StudentID: &studentID, IsActive: true},
		2: {ID: 2, Username: "gone", Role: models.RoleStudent, StudentID: &studentID, IsActive: false},
		3: {ID: 3, Username: "root", Role: models.RoleSuperAdmin, IsActive: true},
	}}
	students := &stubStudentLoader{students: map[int64]*models.Student{
		10: {ID: 10, EnrollmentNumber: "E1", Name: "Asha Verma"},
	}}
	staff := &stubStaffLoader{staff: map[int64]*models.Staff{}}

	m := NewAuthMiddleware(jwtService, accounts, students, staff)

	router := gin.New()
	authed := router.Group("/", m.RequireAuth())
	authed.GET("/student-only", RequireRole(models.RoleStudent), func(c *gin.Context) {
		student, ok := StudentProfile(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"enrollmentNumber": student.EnrollmentNumber})
	})
	authed.GET("/admin-only", RequireRole(models.RoleSuperAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, jwtService, accounts, students
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	router, jwtService, _, _ := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)

	w := doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "E1", body["enrollmentNumber"])
}

func TestRequireAuthRejectsMissingOrBadTokens(t *testing.T) {
	router, jwtService, _, _ := newTestRouter(t)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "campusdesk-test",
	})
	expired, _, err := expiredService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)

	foreignService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "other-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusdesk-test",
	})
	forged, _, err := foreignService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)

	unknownAccount, _, err := jwtService.GenerateToken(99, models.RoleStudent)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "wrong signature", header: "Bearer " + forged},
		{name: "unknown account", header: "Bearer " + unknownAccount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "/student-only", tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAuthRejectsDeactivatedAccount(t *testing.T) {
	router, jwtService, _, _ := newTestRouter(t)

	// Token is cryptographically valid but the account was deactivated.
	token, _, err := jwtService.GenerateToken(2, models.RoleStudent)
	require.NoError(t, err)

	w := doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	router, jwtService, _, _ := newTestRouter(t)

	studentToken, _, err := jwtService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)
	adminToken, _, err := jwtService.GenerateToken(3, models.RoleSuperAdmin)
	require.NoError(t, err)

	w := doRequest(router, "/admin-only", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden", body["message"])

	w = doRequest(router, "/admin-only", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "/student-only", "Bearer "+adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthReportsLookupFailuresAsServerErrors(t *testing.T) {
	router, jwtService, accounts, students := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, models.RoleStudent)
	require.NoError(t, err)

	// A store failure is not an authentication failure.
	accounts.err = errors.New("connection refused")
	w := doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["message"])

	accounts.err = nil
	students.err = errors.New("connection refused")
	w = doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	students.err = nil
	w = doRequest(router, "/student-only", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
