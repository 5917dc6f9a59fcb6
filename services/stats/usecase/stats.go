package usecase

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// ComputeStats fetches the roster and the windowed samples, then
// derives the snapshot. Read failures degrade to an empty data set so
// the dashboard renders "no data" instead of breaking.
func (uc *StatsUC) ComputeStats(ctx context.Context, filter models.StatsFilter) (*models.StatsSnapshot, error) {
	filter, from, to := filter.Normalize(uc.now())

	roster, err := uc.operativeRepo.ListOperatives(ctx)
	if err != nil {
		logger.Warn("Roster fetch failed, computing over empty roster", logger.Err(err))
		roster = nil
	}

	samples, err := uc.sampleRepo.GetSamplesInWindow(ctx, from, to, filter.OperativeID)
	if err != nil {
		logger.Warn("Sample fetch failed, computing over empty window", logger.Err(err))
		samples = nil
	}

	return ComputeSnapshot(filter, roster, samples), nil
}

// ExportReport builds the partitioned location workbook for a filter.
// Unlike ComputeStats, an empty window is an error here: there is
// nothing to download.
func (uc *StatsUC) ExportReport(ctx context.Context, filter models.StatsFilter) ([]byte, string, error) {
	filter, from, to := filter.Normalize(uc.now())

	roster, err := uc.operativeRepo.ListOperatives(ctx)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindFetchFailed, "failed to load roster", err)
	}

	samples, err := uc.sampleRepo.GetSamplesInWindow(ctx, from, to, filter.OperativeID)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindFetchFailed, "failed to load samples", err)
	}

	rows := BuildExportRows(samples, roster, filter)
	if len(rows) == 0 {
		return nil, "", apperrors.New(apperrors.KindNotFound, "no data to export")
	}

	workbook, err := BuildWorkbook(BuildPartitions(rows))
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindWriteFailed, "failed to build workbook", err)
	}

	logger.Info("Location report exported",
		logger.Int("rows", len(rows)),
		logger.String("from", models.FormatTime(from)),
		logger.String("to", models.FormatTime(to)))

	return workbook, ExportFilename, nil
}
