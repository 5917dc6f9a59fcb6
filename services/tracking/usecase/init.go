package usecase

import (
	"time"

	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/pkg/retry"
	"github.com/nmfalves/sentinela/services/operatives"
	"github.com/nmfalves/sentinela/services/tracking"
)

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	sampleRepo    tracking.SampleRepo
	liveRepo      tracking.LiveRepo
	trackingGW    tracking.TrackingGW
	operativeRepo operatives.OperativeRepo
	retrier       *retry.Retrier
	cfg           *models.Config
	now           func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	sampleRepo tracking.SampleRepo,
	liveRepo tracking.LiveRepo,
	trackingGW tracking.TrackingGW,
	operativeRepo operatives.OperativeRepo,
	cfg *models.Config,
) tracking.TrackingUC {
	return &TrackingUC{
		sampleRepo:    sampleRepo,
		liveRepo:      liveRepo,
		trackingGW:    trackingGW,
		operativeRepo: operativeRepo,
		retrier:       retry.NewWithDefaults(),
		cfg:           cfg,
		now:           time.Now,
	}
}
