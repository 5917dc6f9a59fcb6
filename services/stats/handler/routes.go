package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/middleware"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	httpHandler "github.com/nmfalves/sentinela/services/stats/handler/http"
)

// Handler coordinates the HTTP handlers of the stats service
type Handler struct {
	statsHandler *httpHandler.StatsHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(statsHandler *httpHandler.StatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		statsHandler: statsHandler,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all routes of the stats service. The
// dashboard is command-staff only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/stats",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireCommandRole())
	group.GET("", h.statsHandler.GetStats)
	group.GET("/export", h.statsHandler.ExportReport)
}
