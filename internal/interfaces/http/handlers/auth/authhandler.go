package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	authapp "eduhub/internal/application/auth"
	"eduhub/internal/shared/errors"
	"eduhub/internal/shared/logger"
	"eduhub/internal/shared/utils"
)

// AuthService is the application-layer surface the handler depends on.
type AuthService interface {
	Register(ctx context.Context, cmd authapp.RegisterCommand) (*authapp.AuthResult, error)
	Login(ctx context.Context, cmd authapp.LoginCommand) (*authapp.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*authapp.AuthResult, error)
}

type AuthHandler struct {
	service AuthService
	logger  logger.Interface
}

func NewAuthHandler(service AuthService, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, ToAuthResponse(result), "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", ToAuthResponse(result))
}

// RefreshToken handles POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed", ToAuthResponse(result))
}
