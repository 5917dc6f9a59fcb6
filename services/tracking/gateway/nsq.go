package gateway

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/constants"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	nsqpkg "github.com/nmfalves/sentinela/internal/pkg/nsq"
)

// TrackingGW publishes tracking events over NSQ.
type TrackingGW struct {
	producer *nsqpkg.Producer
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(producer *nsqpkg.Producer) *TrackingGW {
	return &TrackingGW{producer: producer}
}

// PublishSampleRecorded publishes a sample-recorded event so the live
// cache updater can apply it.
func (g *TrackingGW) PublishSampleRecorded(ctx context.Context, event *models.SampleRecordedEvent) error {
	return g.producer.Publish(constants.TopicSampleRecorded, event)
}
