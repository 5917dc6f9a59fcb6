package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nmfalves/sentinela/internal/pkg/constants"
	"github.com/nmfalves/sentinela/internal/pkg/database"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// LiveRepo keeps the last known position per operative in Redis: one
// hash per operative plus a shared geo set for the map. The TTL bounds
// staleness when an operative's device dies without a stop event.
type LiveRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLiveRepo creates a new live position repository
func NewLiveRepo(redisClient *database.RedisClient, ttl time.Duration) *LiveRepo {
	return &LiveRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// StoreLivePosition records an operative's latest position.
func (r *LiveRepo) StoreLivePosition(ctx context.Context, event *models.SampleRecordedEvent) error {
	key := fmt.Sprintf(constants.KeyLivePosition, event.OperativeID)

	fields := map[string]interface{}{
		constants.FieldLatitude:   strconv.FormatFloat(event.Latitude, 'f', -1, 64),
		constants.FieldLongitude:  strconv.FormatFloat(event.Longitude, 'f', -1, 64),
		constants.FieldRecordedAt: strconv.FormatInt(event.RecordedAt.Unix(), 10),
	}
	if event.Heading != nil {
		fields[constants.FieldHeading] = strconv.FormatFloat(*event.Heading, 'f', -1, 64)
	}
	if event.Speed != nil {
		fields[constants.FieldSpeed] = strconv.FormatFloat(*event.Speed, 'f', -1, 64)
	}

	if err := r.redisClient.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store live position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, r.ttl); err != nil {
		return fmt.Errorf("failed to set live position TTL: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyLiveGeoSet,
		event.Longitude, event.Latitude, event.OperativeID.String()); err != nil {
		return fmt.Errorf("failed to update geo set: %w", err)
	}

	return nil
}

// RemoveLivePosition drops an operative from the live cache.
func (r *LiveRepo) RemoveLivePosition(ctx context.Context, operativeID string) error {
	key := fmt.Sprintf(constants.KeyLivePosition, operativeID)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to remove live position: %w", err)
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyLiveGeoSet, operativeID); err != nil {
		return fmt.Errorf("failed to remove from geo set: %w", err)
	}

	return nil
}

// GetLivePosition reads an operative's cached position; nil when the
// hash is missing or expired.
func (r *LiveRepo) GetLivePosition(ctx context.Context, operativeID string) (*models.SampleRecordedEvent, error) {
	key := fmt.Sprintf(constants.KeyLivePosition, operativeID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get live position: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[constants.FieldRecordedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	opID, err := uuid.Parse(operativeID)
	if err != nil {
		return nil, fmt.Errorf("invalid operative id: %w", err)
	}

	event := &models.SampleRecordedEvent{
		OperativeID: opID,
		Latitude:    lat,
		Longitude:   lng,
		Active:      true,
		RecordedAt:  time.Unix(ts, 0),
	}

	if v, ok := values[constants.FieldHeading]; ok {
		if heading, err := strconv.ParseFloat(v, 64); err == nil {
			event.Heading = &heading
		}
	}
	if v, ok := values[constants.FieldSpeed]; ok {
		if speed, err := strconv.ParseFloat(v, 64); err == nil {
			event.Speed = &speed
		}
	}

	return event, nil
}

// ListLiveOperativeIDs returns the IDs of operatives with a live geo
// entry. The hash may expire ahead of the geo member; callers must
// tolerate nil position reads.
func (r *LiveRepo) ListLiveOperativeIDs(ctx context.Context) ([]string, error) {
	ids, err := r.redisClient.GeoMembers(ctx, constants.KeyLiveGeoSet)
	if err != nil {
		return nil, fmt.Errorf("failed to list live positions: %w", err)
	}

	return ids, nil
}

// NearbyLiveOperativeIDs returns the operatives sharing within
// radiusKm of a point, closest first.
func (r *LiveRepo) NearbyLiveOperativeIDs(ctx context.Context, lat, lon, radiusKm float64) ([]string, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyLiveGeoSet, lon, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby positions: %w", err)
	}

	ids := make([]string, len(locations))
	for i, loc := range locations {
		ids[i] = loc.Name
	}

	return ids, nil
}
