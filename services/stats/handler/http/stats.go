package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/utils"
	"github.com/nmfalves/sentinela/services/stats"
)

// StatsHandler serves the aggregate dashboard and the report export
type StatsHandler struct {
	statsUC stats.StatsUC
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUC stats.StatsUC) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// GetStats computes the dashboard snapshot for the query filter.
func (h *StatsHandler) GetStats(c echo.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	snapshot, err := h.statsUC.ComputeStats(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to compute stats", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "statistics computed", snapshot)
}

// ExportReport streams the location workbook as a download.
func (h *StatsHandler) ExportReport(c echo.Context) error {
	filter, err := bindFilter(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	workbook, filename, err := h.statsUC.ExportReport(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to export report", logger.Err(err))
		return utils.AppErrorResponse(c, apperrors.HTTPStatus(err), apperrors.MessageOf(err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// bindFilter reads the aggregation window from query parameters.
// Dates are plain calendar days; the use case widens them to full-day
// bounds.
func bindFilter(c echo.Context) (models.StatsFilter, error) {
	filter := models.StatsFilter{
		Unit:        c.QueryParam("unit"),
		OperativeID: c.QueryParam("operative_id"),
	}

	if raw := c.QueryParam("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.New(apperrors.KindUnknown, "start must be formatted YYYY-MM-DD")
		}
		filter.Start = t
	}
	if raw := c.QueryParam("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, apperrors.New(apperrors.KindUnknown, "end must be formatted YYYY-MM-DD")
		}
		filter.End = t
	}
	if !filter.Start.IsZero() && !filter.End.IsZero() && filter.End.Before(filter.Start) {
		return filter, apperrors.New(apperrors.KindUnknown, "end must not precede start")
	}

	return filter, nil
}
