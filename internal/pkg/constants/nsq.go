package constants

// NSQ topics and channels.
const (
	// TopicSampleRecorded carries location ingest events to the live
	// cache updater.
	TopicSampleRecorded = "location.sample.recorded"

	// ChannelLiveCache is the consumer channel of the live cache updater.
	ChannelLiveCache = "live-cache"
)
