package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adith/hostelcore/internal/app/models/dto"
	"github.com/adith/hostelcore/internal/app/services"
	"github.com/adith/hostelcore/internal/middleware"
)

// AuthController handles login for every role
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

// Login authenticates a student or staff member and returns an access
// token carrying the role claim.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	session, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", session.Email).Str("role", string(session.Role)).Msg("User logged in")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}
