package stats

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// StatsUC defines the aggregation and report export operations
// backing the command dashboard.
type StatsUC interface {
	// ComputeStats derives the full dashboard snapshot for a filter.
	// Always a full recompute over a fresh fetch, never incremental.
	ComputeStats(ctx context.Context, filter models.StatsFilter) (*models.StatsSnapshot, error)
	// ExportReport builds the partitioned location workbook and
	// returns its bytes plus the download filename.
	ExportReport(ctx context.Context, filter models.StatsFilter) ([]byte, string, error)
}
