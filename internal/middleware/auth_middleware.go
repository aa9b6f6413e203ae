package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/auth"
)

// Context keys set by RequireAuth.
const (
	ContextAccountID      = "accountID"
	ContextRole           = "role"
	ContextStudentProfile = "studentProfile"
	ContextStaffProfile   = "staffProfile"
)

// AccountLoader resolves accounts for authenticated requests.
type AccountLoader interface {
	GetByID(ctx context.Context, id int64) (*models.Account, error)
}

// StudentLoader resolves student profiles linked to accounts.
type StudentLoader interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// StaffLoader resolves staff profiles linked to accounts.
type StaffLoader interface {
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
}

// AuthMiddleware authenticates requests and loads the caller's profile.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	accountRepo AccountLoader
	studentRepo StudentLoader
	staffRepo   StaffLoader
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(
	jwtService *auth.JWTService,
	accountRepo AccountLoader,
	studentRepo StudentLoader,
	staffRepo StaffLoader,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		accountRepo: accountRepo,
		studentRepo: studentRepo,
		staffRepo:   staffRepo,
	}
}

// RequireAuth validates the bearer token, re-checks the account's active
// flag on every request (the sole revocation mechanism for deactivated
// accounts holding live tokens) and loads the linked profile into the
// context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		account, err := m.accountRepo.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrAccountNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
			} else {
				HandleAPIError(c, err)
				c.Abort()
			}
			return
		}
		if !account.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Account is deactivated"))
			return
		}

		c.Set(ContextAccountID, account.ID)
		c.Set(ContextRole, account.Role)

		switch {
		case account.StudentID != nil:
			student, err := m.studentRepo.GetByID(c.Request.Context(), *account.StudentID)
			if err != nil {
				if errors.Is(err, apperrors.ErrStudentNotFound) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
				} else {
					HandleAPIError(c, err)
					c.Abort()
				}
				return
			}
			c.Set(ContextStudentProfile, student)
		case account.StaffID != nil:
			staff, err := m.staffRepo.GetByID(c.Request.Context(), *account.StaffID)
			if err != nil {
				if errors.Is(err, apperrors.ErrStaffNotFound) {
					c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
				} else {
					HandleAPIError(c, err)
					c.Abort()
				}
				return
			}
			c.Set(ContextStaffProfile, staff)
		}

		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is outside the
// allowed set. Must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		role, ok := value.(models.Role)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden"))
	}
}

// StudentProfile returns the authenticated student profile, if any.
func StudentProfile(c *gin.Context) (*models.Student, bool) {
	value, exists := c.Get(ContextStudentProfile)
	if !exists {
		return nil, false
	}
	student, ok := value.(*models.Student)
	return student, ok
}

// StaffProfile returns the authenticated staff profile, if any.
func StaffProfile(c *gin.Context) (*models.Staff, bool) {
	value, exists := c.Get(ContextStaffProfile)
	if !exists {
		return nil, false
	}
	staff, ok := value.(*models.Staff)
	return staff, ok
}
