package constants

// Redis key layout for the live-position cache.
const (
	// KeyLivePosition is the per-operative hash holding the last known
	// position, formatted with the operative ID.
	KeyLivePosition = "live:position:%s"

	// KeyLiveGeoSet is the geo set of all operatives currently sharing.
	KeyLiveGeoSet = "live:geo"

	// Hash field names
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
	FieldHeading    = "heading"
	FieldSpeed      = "speed"
	FieldRecordedAt = "recorded_at"
)
