package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
	"github.com/rahulm/campusdesk/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Anything outside
// the known taxonomy is logged and surfaced as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrDateOfBirthMissing):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorMessage(err)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))

	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Account is deactivated"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden"))

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrStaffNotFound),
		errors.Is(err, apperrors.ErrMarksNotFound),
		errors.Is(err, apperrors.ErrGrievanceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(errorMessage(err)))

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrSuperAdminExists),
		errors.Is(err, apperrors.ErrStudentAlreadyExists),
		errors.Is(err, apperrors.ErrStaffAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorMessage(err)))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// errorMessage picks the caller-facing text for a mapped error.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDateOfBirthMissing):
		return "Date of birth not found for this user"
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return "User not found"
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "Student not found"
	case errors.Is(err, apperrors.ErrStaffNotFound):
		return "Staff not found"
	case errors.Is(err, apperrors.ErrMarksNotFound):
		return "Marks record not found"
	case errors.Is(err, apperrors.ErrGrievanceNotFound):
		return "Grievance not found"
	case errors.Is(err, apperrors.ErrStudentAlreadyExists):
		return "Student with this enrollment number already exists"
	case errors.Is(err, apperrors.ErrStaffAlreadyExists):
		return "Staff with this ID already exists"
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		return "Username already exists"
	case errors.Is(err, apperrors.ErrSuperAdminExists):
		return "Super admin already exists"
	}

	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "Validation failed"
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return "Resource not found"
	case errors.Is(err, apperrors.ErrConflict):
		return "Conflict"
	}
	return "Internal server error"
}
