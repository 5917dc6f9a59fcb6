package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

func TestLastActiveSample_NoSamples(t *testing.T) {
	assert.Nil(t, LastActiveSample(uuid.New(), nil))
}

func TestLastActiveSample_FiltersInactive(t *testing.T) {
	id := uuid.New()
	samples := []*models.LocationSample{
		{OperativeID: id, Active: false, CreatedAt: testNow},
	}

	assert.Nil(t, LastActiveSample(id, samples))
}

func TestLastActiveSample_FiltersOtherOperatives(t *testing.T) {
	id := uuid.New()
	samples := []*models.LocationSample{
		{OperativeID: uuid.New(), Active: true, CreatedAt: testNow},
	}

	assert.Nil(t, LastActiveSample(id, samples))
}

func TestLastActiveSample_LatestWinsOnRace(t *testing.T) {
	id := uuid.New()
	older := &models.LocationSample{OperativeID: id, Active: true, CreatedAt: testNow.Add(-time.Minute)}
	newer := &models.LocationSample{OperativeID: id, Active: true, CreatedAt: testNow}

	// Two active samples can be observed mid retire/insert; order in
	// the slice must not matter.
	got := LastActiveSample(id, []*models.LocationSample{older, newer})
	require.NotNil(t, got)
	assert.Equal(t, newer, got)

	got = LastActiveSample(id, []*models.LocationSample{newer, older})
	require.NotNil(t, got)
	assert.Equal(t, newer, got)
}
