package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rahulm/campusdesk/internal/app/models/dto"
	"github.com/rahulm/campusdesk/internal/app/services"
	"github.com/rahulm/campusdesk/internal/middleware"
)

// AccountController handles superadmin account administration endpoints.
type AccountController struct {
	accountService *services.AccountService
	logger         zerolog.Logger
}

// NewAccountController creates a new AccountController.
func NewAccountController(accountService *services.AccountService, logger zerolog.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

// List handles GET /superadmin/users with optional role/isActive filters.
func (c *AccountController) List(ctx *gin.Context) {
	var query dto.AccountListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	accounts, err := c.accountService.List(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, accounts)
}

// Get handles GET /superadmin/users/:id.
func (c *AccountController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	account, err := c.accountService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, account)
}

// Deactivate handles DELETE /superadmin/users/:id. Access is revoked on the
// holder's next request; the account and its data stay in place.
func (c *AccountController) Deactivate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accountService.Deactivate(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deactivated successfully"})
}

// Activate handles PATCH /superadmin/users/:id/activate.
func (c *AccountController) Activate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accountService.Activate(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User activated successfully"})
}

// ResetPassword handles PATCH /superadmin/users/:id/reset-password: the
// password becomes the linked profile's date of birth again.
func (c *AccountController) ResetPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.accountService.ResetPassword(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset to date of birth successfully"})
}
