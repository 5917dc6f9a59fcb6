package usecase

import (
	"context"
	"time"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/utils"
)

// RecordSample ingests one position report. The retire step always
// runs first so the one-active-sample invariant holds even when the
// insert never happens or fails: a crash in between leaves zero
// active samples, never two.
func (uc *TrackingUC) RecordSample(ctx context.Context, req *models.SampleRequest) error {
	if req == nil {
		return apperrors.New(apperrors.KindWriteFailed, "sample request cannot be nil")
	}

	operative, err := uc.operativeRepo.GetOperativeByID(ctx, req.OperativeID.String())
	if err != nil {
		return err
	}

	if req.Active && (req.Latitude == nil || req.Longitude == nil) {
		return apperrors.New(apperrors.KindWriteFailed, "coordinates are required to start sharing")
	}
	if req.Latitude != nil && (*req.Latitude < -90 || *req.Latitude > 90) {
		return apperrors.New(apperrors.KindWriteFailed, "latitude must be between -90 and 90")
	}
	if req.Longitude != nil && (*req.Longitude < -180 || *req.Longitude > 180) {
		return apperrors.New(apperrors.KindWriteFailed, "longitude must be between -180 and 180")
	}

	recordedAt := uc.now()

	// Device-side watchers fire at sample rate over flaky mobile
	// links, so transient write failures get a bounded retry instead
	// of silently dropping the sample.
	err = uc.retrier.Execute(ctx, func(ctx context.Context) error {
		if err := uc.sampleRepo.RetireActiveSamples(ctx, req.OperativeID.String()); err != nil {
			return err
		}

		if !req.Active {
			return nil
		}

		sample := &models.LocationSample{
			OperativeID: req.OperativeID,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			Heading:     req.Heading,
			Speed:       req.Speed,
			Active:      true,
			CreatedAt:   recordedAt,
		}
		return uc.sampleRepo.InsertSample(ctx, sample)
	})
	if err != nil {
		return err
	}

	event := &models.SampleRecordedEvent{
		OperativeID: operative.ID,
		Active:      req.Active,
		RecordedAt:  recordedAt,
	}
	if req.Active {
		event.Latitude = *req.Latitude
		event.Longitude = *req.Longitude
		event.Heading = req.Heading
		event.Speed = req.Speed
	}

	// Fire-and-forget: a lost event only delays the live cache until
	// the next sample or the snapshot refresh job.
	if err := uc.trackingGW.PublishSampleRecorded(ctx, event); err != nil {
		logger.Warn("Failed to publish sample event",
			logger.String("operative_id", operative.ID.String()),
			logger.Err(err))
	}

	return nil
}

// ApplySampleEvent updates the live cache from a recorded event. Used
// by the NSQ consumer; last write wins.
func (uc *TrackingUC) ApplySampleEvent(ctx context.Context, event *models.SampleRecordedEvent) error {
	if !event.Active {
		return uc.liveRepo.RemoveLivePosition(ctx, event.OperativeID.String())
	}
	return uc.liveRepo.StoreLivePosition(ctx, event)
}

// ListLivePositions returns the roster-joined last known positions of
// every operative currently sharing. The Redis cache is consulted
// first; the active-sample table is the fallback when the cache is
// cold (for example right after a restart).
func (uc *TrackingUC) ListLivePositions(ctx context.Context) ([]*models.LivePosition, error) {
	roster, err := uc.operativeRepo.ListOperatives(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Operative, len(roster))
	for _, op := range roster {
		byID[op.ID.String()] = op
	}

	positions := []*models.LivePosition{}
	seen := map[string]bool{}

	ids, err := uc.liveRepo.ListLiveOperativeIDs(ctx)
	if err != nil {
		logger.Warn("Live cache unavailable, falling back to database", logger.Err(err))
		ids = nil
	}
	for _, id := range ids {
		event, err := uc.liveRepo.GetLivePosition(ctx, id)
		if err != nil || event == nil {
			continue
		}
		if pos := uc.toLivePosition(event, byID[id]); pos != nil {
			positions = append(positions, pos)
			seen[id] = true
		}
	}

	samples, err := uc.sampleRepo.GetActiveSamples(ctx)
	if err != nil {
		if len(positions) == 0 {
			return nil, err
		}
		return positions, nil
	}

	for _, op := range roster {
		id := op.ID.String()
		if seen[id] {
			continue
		}
		last := LastActiveSample(op.ID, samples)
		if last == nil || !last.HasCoordinates() {
			continue
		}
		event := &models.SampleRecordedEvent{
			OperativeID: op.ID,
			Latitude:    *last.Latitude,
			Longitude:   *last.Longitude,
			Heading:     last.Heading,
			Speed:       last.Speed,
			Active:      true,
			RecordedAt:  last.CreatedAt,
		}
		if pos := uc.toLivePosition(event, op); pos != nil {
			positions = append(positions, pos)
			// Best-effort write-back so the next read hits the cache.
			if err := uc.liveRepo.StoreLivePosition(ctx, event); err != nil {
				logger.Debug("Failed to warm live cache",
					logger.String("operative_id", id),
					logger.Err(err))
			}
		}
	}

	return positions, nil
}

// NearbyPositions returns the markers within radiusKm of a point,
// closest first, served from the Redis geo set.
func (uc *TrackingUC) NearbyPositions(ctx context.Context, lat, lon, radiusKm float64) ([]*models.LivePosition, error) {
	roster, err := uc.operativeRepo.ListOperatives(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Operative, len(roster))
	for _, op := range roster {
		byID[op.ID.String()] = op
	}

	ids, err := uc.liveRepo.NearbyLiveOperativeIDs(ctx, lat, lon, radiusKm)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to query nearby positions", err)
	}

	positions := []*models.LivePosition{}
	for _, id := range ids {
		event, err := uc.liveRepo.GetLivePosition(ctx, id)
		if err != nil || event == nil {
			continue
		}
		if pos := uc.toLivePosition(event, byID[id]); pos != nil {
			positions = append(positions, pos)
		}
	}

	return positions, nil
}

// LastKnownPosition resolves one operative's current marker, nil when
// the operative is not sharing.
func (uc *TrackingUC) LastKnownPosition(ctx context.Context, operativeID string) (*models.LivePosition, error) {
	operative, err := uc.operativeRepo.GetOperativeByID(ctx, operativeID)
	if err != nil {
		return nil, err
	}

	event, err := uc.liveRepo.GetLivePosition(ctx, operativeID)
	if err != nil {
		logger.Warn("Live cache read failed", logger.Err(err))
	}
	if event == nil {
		samples, err := uc.sampleRepo.GetActiveSamples(ctx)
		if err != nil {
			return nil, err
		}
		last := LastActiveSample(operative.ID, samples)
		if last == nil || !last.HasCoordinates() {
			return nil, nil
		}
		event = &models.SampleRecordedEvent{
			OperativeID: operative.ID,
			Latitude:    *last.Latitude,
			Longitude:   *last.Longitude,
			Heading:     last.Heading,
			Speed:       last.Speed,
			Active:      true,
			RecordedAt:  last.CreatedAt,
		}
	}

	return uc.toLivePosition(event, operative), nil
}

// RetireStalePositions drops live entries whose last sample is older
// than the configured staleness window. Run by the janitor job; it
// covers devices that vanished without a stop event.
func (uc *TrackingUC) RetireStalePositions(ctx context.Context) error {
	cutoff := uc.now().Add(-time.Duration(uc.cfg.Tracking.LiveTTLMinutes) * time.Minute)

	ids, err := uc.liveRepo.ListLiveOperativeIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		event, err := uc.liveRepo.GetLivePosition(ctx, id)
		if err != nil {
			continue
		}
		if event == nil {
			// Hash expired but the geo member outlived it.
			if err := uc.liveRepo.RemoveLivePosition(ctx, id); err != nil {
				logger.Warn("Failed to drop orphaned geo member",
					logger.String("operative_id", id),
					logger.Err(err))
			}
			continue
		}
		if event.RecordedAt.Before(cutoff) {
			if err := uc.liveRepo.RemoveLivePosition(ctx, id); err != nil {
				logger.Warn("Failed to retire stale position",
					logger.String("operative_id", id),
					logger.Err(err))
				continue
			}
			logger.Info("Retired stale live position",
				logger.String("operative_id", id))
		}
	}

	return nil
}

func (uc *TrackingUC) toLivePosition(event *models.SampleRecordedEvent, operative *models.Operative) *models.LivePosition {
	if event == nil {
		return nil
	}

	pos := &models.LivePosition{
		OperativeID: event.OperativeID,
		Latitude:    event.Latitude,
		Longitude:   event.Longitude,
		Heading:     event.Heading,
		Speed:       event.Speed,
		Geohash:     utils.EncodeGeohash(event.Latitude, event.Longitude, uc.cfg.Tracking.GeohashPrecision),
		RecordedAt:  event.RecordedAt,
	}
	// Unknown operatives render with empty identity rather than failing.
	if operative != nil {
		pos.Name = operative.Name
		pos.Unit = operative.Unit
	}

	return pos
}
