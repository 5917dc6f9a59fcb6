package nsq

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/constants"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	nsqpkg "github.com/nmfalves/sentinela/internal/pkg/nsq"
	"github.com/nmfalves/sentinela/services/tracking"
)

// SampleEventConsumer applies sample-recorded events to the live cache
type SampleEventConsumer struct {
	trackingUC tracking.TrackingUC
	consumer   *nsqpkg.Consumer
}

// NewSampleEventConsumer creates the consumer and connects it to NSQ
func NewSampleEventConsumer(address string, trackingUC tracking.TrackingUC) (*SampleEventConsumer, error) {
	c := &SampleEventConsumer{trackingUC: trackingUC}

	consumer, err := nsqpkg.NewConsumer(
		constants.TopicSampleRecorded,
		constants.ChannelLiveCache,
		address,
		c.handleSampleRecorded,
	)
	if err != nil {
		return nil, err
	}

	c.consumer = consumer
	return c, nil
}

func (c *SampleEventConsumer) handleSampleRecorded(message []byte) error {
	var event models.SampleRecordedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		logger.Error("Failed to unmarshal sample event", logger.Err(err))
		// Malformed payloads are not worth requeueing.
		return nil
	}

	if err := c.trackingUC.ApplySampleEvent(context.Background(), &event); err != nil {
		logger.Error("Failed to apply sample event",
			logger.String("operative_id", event.OperativeID.String()),
			logger.Err(err))
		return err
	}

	return nil
}

// Stop gracefully stops the underlying consumer
func (c *SampleEventConsumer) Stop() {
	if c.consumer != nil {
		c.consumer.Stop()
	}
}
