package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
)

// stubStudentStore records created students in memory. Embedding the
// interface leaves the untouched methods panicking if a test strays into
// them.
type stubStudentStore struct {
	services.StudentStore
	enrollments map[string]bool
}

func (s *stubStudentStore) EnrollmentNumberExists(ctx context.Context, enrollmentNumber string) (bool, error) {
	return s.enrollments[enrollmentNumber], nil
}

func (s *stubStudentStore) Create(ctx context.Context, q repositories.Querier, student *models.Student) error {
	student.ID = int64(len(s.enrollments) + 1)
	s.enrollments[student.EnrollmentNumber] = true
	return nil
}

type stubAccountStore struct {
	services.AccountStore
	created int64
}

func (s *stubAccountStore) Create(ctx context.Context, q repositories.Querier, account *models.Account) (int64, error) {
	s.created++
	return s.created, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campusdesk-test",
	})
	students := &stubStudentStore{enrollments: map[string]bool{}}
	accounts := &stubAccountStore{}
	svc := services.NewAuthService(accounts, students, nil, jwtService, nil, services.PassthroughTxRunner)
	ctrl := NewAuthController(svc, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", ctrl.Login)
	router.POST("/api/auth/register-student", ctrl.RegisterStudent)
	return router
}

func TestRegisterStudentDuplicateIsBadRequest(t *testing.T) {
	router := newAuthRouter(t)
	body := `{
		"enrollmentNumber": "E1",
		"name": "Asha Rao",
		"email": "asha@example.edu",
		"dateOfBirth": "2000-01-01",
		"course": "BSc Physics",
		"year": 2
	}`

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register-student", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	first := post()
	assert.Equal(t, http.StatusCreated, first.Code)

	second := post()
	assert.Equal(t, http.StatusBadRequest, second.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "Student with this enrollment number already exists", resp["message"])
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	router := newAuthRouter(t)

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing password",
			body:        `{"username": "E1", "role": "student"}`,
			wantMessage: "Password is required",
		},
		{
			name:        "missing username",
			body:        `{"password": "2000-01-01", "role": "student"}`,
			wantMessage: "Username is required",
		},
		{
			name:        "missing role",
			body:        `{"username": "E1", "password": "2000-01-01"}`,
			wantMessage: "Role is required",
		},
		{
			name:        "unknown role",
			body:        `{"username": "E1", "password": "2000-01-01", "role": "principal"}`,
			wantMessage: "Role must be one of: student staff superadmin",
		},
		{
			name:        "not json",
			body:        `username=E1`,
			wantMessage: "Invalid request body",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMessage, body["message"])
		})
	}
}
