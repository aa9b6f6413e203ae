package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// parseIDParam reads the :id path parameter as int64. On failure it writes
// a 404 and reports false; route ids are opaque, so a malformed id behaves
// like an unknown one.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
		return 0, false
	}
	return id, true
}

// staffID returns the authenticated staff profile id. Writes a 401 when the
// account has no staff profile.
func staffID(ctx *gin.Context) (int64, bool) {
	staff, ok := middleware.StaffProfile(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return 0, false
	}
	return staff.ID, true
}

// studentID returns the authenticated student profile id. Writes a 401 when
// the account has no student profile.
func studentID(ctx *gin.Context) (int64, bool) {
	student, ok := middleware.StudentProfile(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return 0, false
	}
	return student.ID, true
}
