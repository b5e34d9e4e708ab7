package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rkabir/profscope/internal/app/models/dto"
	"github.com/rkabir/profscope/internal/app/services"
	"github.com/rkabir/profscope/internal/middleware"
)

// AuthController handles identity-related endpoints. Token issuance lives
// at the external identity provider; this controller only provisions and
// exposes the local account.
type AuthController struct {
	userService *services.UserService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService *services.UserService) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// SyncUser provisions or refreshes the local account for the caller's
// identity
// @Summary Sync the caller's account
// @Description Finds or creates the local account for the verified identity and refreshes its profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/sync-user [post]
func (c *AuthController) SyncUser(ctx *gin.Context) {
	// RequireAuth already provisioned the account; just return it.
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Me returns the caller's account
// @Summary Get the caller's account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
