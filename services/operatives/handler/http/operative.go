package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/utils"
	"github.com/nmfalves/sentinela/services/operatives"
)

// OperativeHandler handles HTTP requests for roster management
type OperativeHandler struct {
	operativeUC operatives.OperativeUC
}

// NewOperativeHandler creates a new operative handler
func NewOperativeHandler(operativeUC operatives.OperativeUC) *OperativeHandler {
	return &OperativeHandler{operativeUC: operativeUC}
}

// ListOperatives returns the full roster ordered by name
func (h *OperativeHandler) ListOperatives(c echo.Context) error {
	roster, err := h.operativeUC.ListOperatives(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list operatives", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Operatives retrieved", roster)
}

// GetOperative returns a single operative
func (h *OperativeHandler) GetOperative(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid operative ID")
	}

	operative, err := h.operativeUC.GetOperative(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Operative retrieved", operative)
}

// Approve marks a pending registration as approved
func (h *OperativeHandler) Approve(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Approve, "Operative approved")
}

// Block disables an operative account
func (h *OperativeHandler) Block(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Block, "Operative blocked")
}

// Unblock restores a blocked operative account
func (h *OperativeHandler) Unblock(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Unblock, "Operative unblocked")
}

// Promote elevates an operative to admin
func (h *OperativeHandler) Promote(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Promote, "Operative promoted")
}

// Demote returns an admin to the operational role
func (h *OperativeHandler) Demote(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Demote, "Operative demoted")
}

// Delete permanently removes an operative
func (h *OperativeHandler) Delete(c echo.Context) error {
	return h.mutate(c, h.operativeUC.Delete, "Operative deleted")
}

func (h *OperativeHandler) mutate(c echo.Context, fn func(ctx context.Context, id string) error, message string) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Invalid operative ID")
	}

	if err := fn(c.Request().Context(), id); err != nil {
		logger.Error("Roster mutation failed",
			logger.String("operative_id", id),
			logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}
