package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// GrievanceController handles grievance endpoints for both surfaces.
type GrievanceController struct {
	grievanceService *services.GrievanceService
	logger           zerolog.Logger
}

// NewGrievanceController creates a new GrievanceController.
func NewGrievanceController(grievanceService *services.GrievanceService, logger zerolog.Logger) *GrievanceController {
	return &GrievanceController{
		grievanceService: grievanceService,
		logger:           logger,
	}
}

// File handles POST /student/grievances.
func (c *GrievanceController) File(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grievance, err := c.grievanceService.File(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, grievance)
}

// ListForStudent handles GET /student/grievances.
func (c *GrievanceController) ListForStudent(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var query dto.GrievanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grievances, err := c.grievanceService.ListForStudent(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grievances)
}

// GetForStudent handles GET /student/grievances/:id. Grievances filed by
// other students come back as 404.
func (c *GrievanceController) GetForStudent(ctx *gin.Context) {
	ownStudentID, ok := studentID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	grievance, err := c.grievanceService.GetForStudent(ctx.Request.Context(), id, ownStudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grievance)
}

// ListAll handles GET /staff/grievances.
func (c *GrievanceController) ListAll(ctx *gin.Context) {
	var query dto.GrievanceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grievances, err := c.grievanceService.ListAll(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grievances)
}

// Respond handles PUT /staff/grievances/:id/respond.
func (c *GrievanceController) Respond(ctx *gin.Context) {
	ownStaffID, ok := staffID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.RespondGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grievance, err := c.grievanceService.Respond(ctx.Request.Context(), id, ownStaffID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grievance)
}
