package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_Symmetry(t *testing.T) {
	lisbonLat, lisbonLon := 38.7, -9.1
	portoLat, portoLon := 41.15, -8.61

	ab := HaversineKm(lisbonLat, lisbonLon, portoLat, portoLon)
	ba := HaversineKm(portoLat, portoLon, lisbonLat, lisbonLon)

	assert.InDelta(t, ab, ba, 1e-9, "distance should be symmetric")
}

func TestHaversineKm_SamePoint(t *testing.T) {
	assert.Zero(t, HaversineKm(38.7, -9.1, 38.7, -9.1))
}

func TestHaversineKm_LisbonPorto(t *testing.T) {
	km := HaversineKm(38.7, -9.1, 41.15, -8.61)

	assert.InDelta(t, 275.0, km, 5.0, "Lisbon to Porto should be roughly 275 km")
}

func TestSegmentKm_NilCoordinateContributesZero(t *testing.T) {
	lat := 38.7
	lon := -9.1

	assert.Zero(t, SegmentKm(nil, &lon, &lat, &lon))
	assert.Zero(t, SegmentKm(&lat, nil, &lat, &lon))
	assert.Zero(t, SegmentKm(&lat, &lon, nil, &lon))
	assert.Zero(t, SegmentKm(&lat, &lon, &lat, nil))
}

func TestSegmentKm_BothPointsPresent(t *testing.T) {
	lat1, lon1 := 38.7, -9.1
	lat2, lon2 := 41.15, -8.61

	km := SegmentKm(&lat1, &lon1, &lat2, &lon2)

	assert.InDelta(t, HaversineKm(lat1, lon1, lat2, lon2), km, 1e-9)
}

func TestGeohashRoundTrip(t *testing.T) {
	hash := EncodeGeohash(39.74362, -8.80705, 7)

	assert.Len(t, hash, 7)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, 39.74362, lat, 0.01)
	assert.InDelta(t, -8.80705, lon, 0.01)
}
