package tracking

import (
	"context"
	"time"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// SampleRepo defines persistence of raw location samples.
type SampleRepo interface {
	// RetireActiveSamples marks every active sample of an operative
	// inactive. Safe to call when none exist.
	RetireActiveSamples(ctx context.Context, operativeID string) error
	InsertSample(ctx context.Context, sample *models.LocationSample) error
	GetActiveSamples(ctx context.Context) ([]*models.LocationSample, error)
	GetSamplesInWindow(ctx context.Context, from, to time.Time, operativeID string) ([]*models.LocationSample, error)
}

// LiveRepo defines the Redis-backed last-known-position cache.
type LiveRepo interface {
	StoreLivePosition(ctx context.Context, event *models.SampleRecordedEvent) error
	RemoveLivePosition(ctx context.Context, operativeID string) error
	GetLivePosition(ctx context.Context, operativeID string) (*models.SampleRecordedEvent, error)
	ListLiveOperativeIDs(ctx context.Context) ([]string, error)
	NearbyLiveOperativeIDs(ctx context.Context, lat, lon, radiusKm float64) ([]string, error)
}

// TrackingGW publishes tracking events to the message bus.
type TrackingGW interface {
	PublishSampleRecorded(ctx context.Context, event *models.SampleRecordedEvent) error
}

// TrackingUC defines ingest and live-position operations.
type TrackingUC interface {
	RecordSample(ctx context.Context, req *models.SampleRequest) error
	ListLivePositions(ctx context.Context) ([]*models.LivePosition, error)
	NearbyPositions(ctx context.Context, lat, lon, radiusKm float64) ([]*models.LivePosition, error)
	LastKnownPosition(ctx context.Context, operativeID string) (*models.LivePosition, error)
	ApplySampleEvent(ctx context.Context, event *models.SampleRecordedEvent) error
	RetireStalePositions(ctx context.Context) error
}
