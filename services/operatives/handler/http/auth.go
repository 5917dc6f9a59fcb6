package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/utils"
	"github.com/nmfalves/sentinela/services/operatives"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	operativeUC operatives.OperativeUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(operativeUC operatives.OperativeUC) *AuthHandler {
	return &AuthHandler{operativeUC: operativeUC}
}

// Register handles self-registration of new operatives
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	operative, err := h.operativeUC.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated,
		"Registration submitted, awaiting command approval", operative)
}

// Login handles login attempts
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.operativeUC.Login(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Login failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
