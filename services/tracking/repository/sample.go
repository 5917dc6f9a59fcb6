package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// SampleRepo persists raw location samples in PostgreSQL.
type SampleRepo struct {
	db *sqlx.DB
}

// NewSampleRepo creates a new sample repository
func NewSampleRepo(db *sqlx.DB) *SampleRepo {
	return &SampleRepo{db: db}
}

// RetireActiveSamples marks every active sample of an operative as
// inactive. Zero rows affected is fine: the call is idempotent by
// contract so the ingest path can always run it first.
func (r *SampleRepo) RetireActiveSamples(ctx context.Context, operativeID string) error {
	query := `
		UPDATE location_samples SET active = false
		WHERE operative_id = $1 AND active = true
	`

	if _, err := r.db.ExecContext(ctx, query, operativeID); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to retire active samples", err)
	}

	return nil
}

// InsertSample appends one new sample row.
func (r *SampleRepo) InsertSample(ctx context.Context, sample *models.LocationSample) error {
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO location_samples (id, operative_id, latitude, longitude,
			heading, speed, active, created_at
		) VALUES (:id, :operative_id, :latitude, :longitude,
			:heading, :speed, :active, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, sample); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to insert sample", err)
	}

	return nil
}

// GetActiveSamples returns every sample still flagged active, newest
// first per operative so the resolver's tie-break is cheap.
func (r *SampleRepo) GetActiveSamples(ctx context.Context) ([]*models.LocationSample, error) {
	query := `
		SELECT id, operative_id, latitude, longitude, heading, speed, active, created_at
		FROM location_samples
		WHERE active = true
		ORDER BY operative_id, created_at DESC
	`

	samples := []*models.LocationSample{}
	if err := r.db.SelectContext(ctx, &samples, query); err != nil {
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to get active samples", err)
	}

	return samples, nil
}

// GetSamplesInWindow returns samples inside [from, to], optionally
// narrowed to one operative, ordered by creation time.
func (r *SampleRepo) GetSamplesInWindow(ctx context.Context, from, to time.Time, operativeID string) ([]*models.LocationSample, error) {
	query := `
		SELECT id, operative_id, latitude, longitude, heading, speed, active, created_at
		FROM location_samples
		WHERE created_at >= $1 AND created_at <= $2
	`
	args := []interface{}{from, to}

	if operativeID != "" {
		query += ` AND operative_id = $3`
		args = append(args, operativeID)
	}
	query += ` ORDER BY created_at ASC`

	samples := []*models.LocationSample{}
	if err := r.db.SelectContext(ctx, &samples, query, args...); err != nil {
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to get samples in window", err)
	}

	return samples, nil
}
