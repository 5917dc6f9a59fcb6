package http

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/utils"
	"github.com/nmfalves/sentinela/services/tracking"
)

// TrackingHandler handles position ingest and live map requests
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// RecordSample ingests one position report for the authenticated
// operative. The operative ID comes from the token, never the body.
func (h *TrackingHandler) RecordSample(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.SampleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request payload")
	}
	req.OperativeID = userID

	if err := h.trackingUC.RecordSample(c.Request().Context(), &req); err != nil {
		logger.Error("Failed to record sample",
			logger.String("operative_id", userID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	message := "sample recorded"
	if !req.Active {
		message = "sharing stopped"
	}
	return utils.SuccessResponse(c, 200, message, nil)
}

// ListLivePositions returns the markers for the command map.
func (h *TrackingHandler) ListLivePositions(c echo.Context) error {
	positions, err := h.trackingUC.ListLivePositions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list live positions", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, 200, "live positions retrieved", positions)
}

// defaultNearbyRadiusKm applies when the query omits radius_km.
const defaultNearbyRadiusKm = 5.0

// NearbyPositions returns the markers within a radius of a point,
// closest first.
func (h *TrackingHandler) NearbyPositions(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	radiusKm := defaultNearbyRadiusKm
	if v := c.QueryParam("radius_km"); v != "" {
		radiusKm, err = strconv.ParseFloat(v, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "invalid radius")
		}
	}

	positions, err := h.trackingUC.NearbyPositions(c.Request().Context(), lat, lon, radiusKm)
	if err != nil {
		logger.Error("Failed to query nearby positions", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, 200, "nearby positions retrieved", positions)
}

// LastKnownPosition returns one operative's marker; 404 when the
// operative exists but is not sharing.
func (h *TrackingHandler) LastKnownPosition(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.BadRequestResponse(c, "invalid operative id")
	}

	position, err := h.trackingUC.LastKnownPosition(c.Request().Context(), id)
	if err != nil {
		logger.Error("Failed to resolve last known position",
			logger.String("operative_id", id),
			logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}
	if position == nil {
		return utils.NotFoundResponse(c, "operative is not sharing location")
	}

	return utils.SuccessResponse(c, 200, "position retrieved", position)
}
