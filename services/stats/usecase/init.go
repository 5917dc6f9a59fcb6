package usecase

import (
	"time"

	"github.com/nmfalves/sentinela/services/operatives"
	"github.com/nmfalves/sentinela/services/stats"
	"github.com/nmfalves/sentinela/services/tracking"
)

// StatsUC implements the stats.StatsUC interface
type StatsUC struct {
	operativeRepo operatives.OperativeRepo
	sampleRepo    tracking.SampleRepo
	now           func() time.Time
}

// NewStatsUC creates a new stats use case
func NewStatsUC(operativeRepo operatives.OperativeRepo, sampleRepo tracking.SampleRepo) stats.StatsUC {
	return &StatsUC{
		operativeRepo: operativeRepo,
		sampleRepo:    sampleRepo,
		now:           time.Now,
	}
}
