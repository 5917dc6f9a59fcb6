package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/middleware"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	httpHandler "github.com/nmfalves/sentinela/services/operatives/handler/http"
)

// Handler coordinates the HTTP handlers of the operatives service
type Handler struct {
	authHandler      *httpHandler.AuthHandler
	operativeHandler *httpHandler.OperativeHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *httpHandler.AuthHandler,
	operativeHandler *httpHandler.OperativeHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:      authHandler,
		operativeHandler: operativeHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all routes of the operatives service.
// Roster mutation is restricted to command staff.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	protected := e.Group("/operatives", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/:id", h.operativeHandler.GetOperative)

	command := protected.Group("", middleware.RequireCommandRole())
	command.GET("", h.operativeHandler.ListOperatives)
	command.POST("/:id/approve", h.operativeHandler.Approve)
	command.POST("/:id/block", h.operativeHandler.Block)
	command.POST("/:id/unblock", h.operativeHandler.Unblock)
	command.POST("/:id/promote", h.operativeHandler.Promote)
	command.POST("/:id/demote", h.operativeHandler.Demote)
	command.DELETE("/:id", h.operativeHandler.Delete)
}
