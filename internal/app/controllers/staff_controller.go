package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// StaffController handles staff profile endpoints on the superadmin surface.
type StaffController struct {
	staffService *services.StaffService
	authService  *services.AuthService
	logger       zerolog.Logger
}

// NewStaffController creates a new StaffController.
func NewStaffController(staffService *services.StaffService, authService *services.AuthService, logger zerolog.Logger) *StaffController {
	return &StaffController{
		staffService: staffService,
		authService:  authService,
		logger:       logger,
	}
}

// RegisterWithAccount handles POST /superadmin/staff, returning both the
// profile and the created account reference.
func (c *StaffController) RegisterWithAccount(ctx *gin.Context) {
	var req dto.RegisterStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	staff, account, err := c.authService.RegisterStaff(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedStaffResponse{
		Staff: staff,
		User:  dto.CreatedAccountRef{ID: account.ID, Role: account.Role},
	})
}

// Update handles PUT /superadmin/staff/:id with partial fields.
func (c *StaffController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	staff, err := c.staffService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, staff)
}
