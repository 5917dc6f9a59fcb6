package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is one raw position report from an operative's
// device. Samples are append-only; only the Active flag is ever
// flipped, and at most one sample per operative may be active.
// Coordinates are pointers because historic rows may carry nulls;
// a nil coordinate contributes zero distance and renders no marker.
type LocationSample struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OperativeID uuid.UUID `json:"operative_id" db:"operative_id"`
	Latitude    *float64  `json:"latitude" db:"latitude"`
	Longitude   *float64  `json:"longitude" db:"longitude"`
	Heading     *float64  `json:"heading" db:"heading"`
	Speed       *float64  `json:"speed" db:"speed"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (s *LocationSample) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// SampleRequest is the ingest payload delivered by the device-side
// position watcher. Active=false with no coordinates realizes a
// "stop sharing" transition.
type SampleRequest struct {
	OperativeID uuid.UUID `json:"operative_id"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Heading     *float64  `json:"heading"`
	Speed       *float64  `json:"speed"`
	Active      bool      `json:"active"`
}

// LivePosition is the roster-joined projection of an operative's last
// known position, cached in Redis for the command map.
type LivePosition struct {
	OperativeID uuid.UUID `json:"operative_id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Heading     *float64  `json:"heading,omitempty"`
	Speed       *float64  `json:"speed,omitempty"`
	Geohash     string    `json:"geohash"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// SampleRecordedEvent is published after a sample insert so the live
// cache can be updated without polling the database.
type SampleRecordedEvent struct {
	OperativeID uuid.UUID `json:"operative_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Heading     *float64  `json:"heading,omitempty"`
	Speed       *float64  `json:"speed,omitempty"`
	Active      bool      `json:"active"`
	RecordedAt  time.Time `json:"recorded_at"`
}
