package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	operativesMocks "github.com/nmfalves/sentinela/services/operatives/mocks"
	trackingMocks "github.com/nmfalves/sentinela/services/tracking/mocks"
)

func newTestStatsUC(t *testing.T) (*StatsUC, *operativesMocks.MockOperativeRepo, *trackingMocks.MockSampleRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	operativeRepo := operativesMocks.NewMockOperativeRepo(ctrl)
	sampleRepo := trackingMocks.NewMockSampleRepo(ctrl)

	uc := &StatsUC{
		operativeRepo: operativeRepo,
		sampleRepo:    sampleRepo,
		now: func() time.Time {
			return time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
		},
	}
	return uc, operativeRepo, sampleRepo
}

func TestComputeStats_DefaultWindow(t *testing.T) {
	uc, operativeRepo, sampleRepo := newTestStatsUC(t)

	op := newOperative("Ana", "Alpha", true, true)
	operativeRepo.EXPECT().ListOperatives(gomock.Any()).Return([]*models.Operative{op}, nil)
	sampleRepo.EXPECT().
		GetSamplesInWindow(gomock.Any(),
			time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC),
			"").
		Return(nil, nil)

	snapshot, err := uc.ComputeStats(context.Background(), models.StatsFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.TotalOperatives)
}

func TestComputeStats_ReadFailureDegradesToEmpty(t *testing.T) {
	uc, operativeRepo, sampleRepo := newTestStatsUC(t)

	operativeRepo.EXPECT().ListOperatives(gomock.Any()).
		Return(nil, errors.New("connection refused"))
	sampleRepo.EXPECT().GetSamplesInWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	snapshot, err := uc.ComputeStats(context.Background(), models.StatsFilter{})

	require.NoError(t, err, "read failures render as no data, not an error")
	assert.Zero(t, snapshot.TotalOperatives)
	assert.Zero(t, snapshot.DistanceKm)
}

func TestExportReport_NoDataIsNotFound(t *testing.T) {
	uc, operativeRepo, sampleRepo := newTestStatsUC(t)

	operativeRepo.EXPECT().ListOperatives(gomock.Any()).Return(nil, nil)
	sampleRepo.EXPECT().GetSamplesInWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, _, err := uc.ExportReport(context.Background(), models.StatsFilter{})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestExportReport_BuildsWorkbook(t *testing.T) {
	uc, operativeRepo, sampleRepo := newTestStatsUC(t)

	op := newOperative("Ana", "Alpha", true, true)
	sample := newSample(op, time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC), 38.7, -9.1)

	operativeRepo.EXPECT().ListOperatives(gomock.Any()).Return([]*models.Operative{op}, nil)
	sampleRepo.EXPECT().GetSamplesInWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.LocationSample{sample}, nil)

	workbook, filename, err := uc.ExportReport(context.Background(), models.StatsFilter{})

	require.NoError(t, err)
	assert.Equal(t, "export-localizacoes.xlsx", filename)
	assert.NotEmpty(t, workbook)
}

func TestExportReport_FetchFailurePropagates(t *testing.T) {
	uc, operativeRepo, _ := newTestStatsUC(t)

	operativeRepo.EXPECT().ListOperatives(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, _, err := uc.ExportReport(context.Background(), models.StatsFilter{})

	require.Error(t, err)
	assert.Equal(t, apperrors.KindFetchFailed, apperrors.KindOf(err))
}
