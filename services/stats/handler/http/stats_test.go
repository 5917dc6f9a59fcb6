package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/services/stats/mocks"
)

func newTestStatsHandler(t *testing.T) (*StatsHandler, *mocks.MockStatsUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockStatsUC(ctrl)
	return NewStatsHandler(uc), uc
}

func statsContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetStats_BindsWindow(t *testing.T) {
	handler, uc := newTestStatsHandler(t)

	uc.EXPECT().
		ComputeStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx interface{}, filter models.StatsFilter) (*models.StatsSnapshot, error) {
			assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), filter.Start)
			assert.Equal(t, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), filter.End)
			assert.Equal(t, "Alpha", filter.Unit)
			return &models.StatsSnapshot{TotalOperatives: 3}, nil
		})

	c, rec := statsContext(t, "/stats?start=2024-06-01&end=2024-06-07&unit=Alpha")

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_operatives":3`)
}

func TestGetStats_InvalidDate(t *testing.T) {
	handler, _ := newTestStatsHandler(t)

	c, rec := statsContext(t, "/stats?start=01-06-2024")

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats_EndBeforeStart(t *testing.T) {
	handler, _ := newTestStatsHandler(t)

	c, rec := statsContext(t, "/stats?start=2024-06-07&end=2024-06-01")

	require.NoError(t, handler.GetStats(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportReport_StreamsAttachment(t *testing.T) {
	handler, uc := newTestStatsHandler(t)

	uc.EXPECT().
		ExportReport(gomock.Any(), gomock.Any()).
		Return([]byte("workbook-bytes"), "export-localizacoes.xlsx", nil)

	c, rec := statsContext(t, "/stats/export")

	require.NoError(t, handler.ExportReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "export-localizacoes.xlsx")
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestExportReport_NoData(t *testing.T) {
	handler, uc := newTestStatsHandler(t)

	uc.EXPECT().
		ExportReport(gomock.Any(), gomock.Any()).
		Return(nil, "", apperrors.New(apperrors.KindNotFound, "no data to export"))

	c, rec := statsContext(t, "/stats/export")

	require.NoError(t, handler.ExportReport(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
