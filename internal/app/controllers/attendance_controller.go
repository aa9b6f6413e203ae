package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// AttendanceController handles attendance endpoints for both surfaces.
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController.
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// Mark handles POST /staff/attendance. The staff attribution comes from the
// authenticated profile, never from the body.
func (c *AttendanceController) Mark(ctx *gin.Context) {
	id, ok := staffID(ctx)
	if !ok {
		return
	}

	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.attendanceService.Mark(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListForStaff handles GET /staff/attendance.
func (c *AttendanceController) ListForStaff(ctx *gin.Context) {
	id, ok := staffID(ctx)
	if !ok {
		return
	}

	var query dto.StaffAttendanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.attendanceService.ListForStaff(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// ListForStudent handles GET /student/attendance.
func (c *AttendanceController) ListForStudent(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var query dto.StudentAttendanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.attendanceService.ListForStudent(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// Summary handles GET /student/attendance/summary.
func (c *AttendanceController) Summary(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var query dto.StudentAttendanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	summary, err := c.attendanceService.Summary(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
