package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/middleware"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	httpHandler "github.com/nmfalves/sentinela/services/tracking/handler/http"
)

// Handler coordinates the HTTP handlers of the tracking service
type Handler struct {
	trackingHandler *httpHandler.TrackingHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(trackingHandler *httpHandler.TrackingHandler, cfg *models.Config) *Handler {
	return &Handler{
		trackingHandler: trackingHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all routes of the tracking service. Every
// route requires authentication; the live map additionally requires
// command staff.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/tracking", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.POST("/samples", h.trackingHandler.RecordSample)

	command := group.Group("", middleware.RequireCommandRole())
	command.GET("/live", h.trackingHandler.ListLivePositions)
	command.GET("/live/nearby", h.trackingHandler.NearbyPositions)
	command.GET("/live/:id", h.trackingHandler.LastKnownPosition)
}
