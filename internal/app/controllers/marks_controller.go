package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// MarksController handles marks endpoints for both surfaces.
type MarksController struct {
	marksService *services.MarksService
	logger       zerolog.Logger
}

// NewMarksController creates a new MarksController.
func NewMarksController(marksService *services.MarksService, logger zerolog.Logger) *MarksController {
	return &MarksController{
		marksService: marksService,
		logger:       logger,
	}
}

// Add handles POST /staff/marks.
func (c *MarksController) Add(ctx *gin.Context) {
	id, ok := staffID(ctx)
	if !ok {
		return
	}

	var req dto.CreateMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.marksService.Add(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

// ListForStaff handles GET /staff/marks.
func (c *MarksController) ListForStaff(ctx *gin.Context) {
	id, ok := staffID(ctx)
	if !ok {
		return
	}

	var query dto.StaffMarksQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.marksService.ListForStaff(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// Update handles PUT /staff/marks/:id. Rows created by other staff members
// come back as 404.
func (c *MarksController) Update(ctx *gin.Context) {
	ownStaffID, ok := staffID(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	record, err := c.marksService.Update(ctx.Request.Context(), id, ownStaffID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, record)
}

// ListForStudent handles GET /student/marks.
func (c *MarksController) ListForStudent(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var query dto.StudentMarksQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	records, err := c.marksService.ListForStudent(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// Summary handles GET /student/marks/summary.
func (c *MarksController) Summary(ctx *gin.Context) {
	id, ok := studentID(ctx)
	if !ok {
		return
	}

	var query dto.StudentMarksQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	summary, err := c.marksService.Summary(ctx.Request.Context(), id, &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
