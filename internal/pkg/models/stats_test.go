package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsFilterNormalize_DefaultTrailingWeek(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

	filter, from, to := StatsFilter{}.Normalize(now)

	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC), to)
	assert.Equal(t, now, filter.End)
	assert.Equal(t, now.AddDate(0, 0, -6), filter.Start)
}

func TestStatsFilterNormalize_ExplicitWindow(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	filter := StatsFilter{
		Start: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
	}

	_, from, to := filter.Normalize(now)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 3, 23, 59, 59, 0, time.UTC), to)
}

func TestStatsFilterNormalize_StartDefaultsFromEnd(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	filter := StatsFilter{End: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)}

	_, from, _ := filter.Normalize(now)

	assert.Equal(t, time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC), from)
}

func TestDisplayDateTime(t *testing.T) {
	ts := time.Date(2024, 6, 5, 9, 8, 7, 0, time.UTC)

	assert.Equal(t, "05/06/24, 09:08:07", DisplayDateTime(ts))
	assert.Equal(t, "05/06/24", DisplayDate(ts))
}
