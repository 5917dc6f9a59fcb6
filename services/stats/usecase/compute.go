package usecase

import (
	"math"
	"sort"

	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/internal/utils"
)

// ComputeSnapshot derives the dashboard snapshot from an
// already-fetched roster and sample window. Pure function; the
// caller handles fetching and window narrowing.
func ComputeSnapshot(filter models.StatsFilter, roster []*models.Operative, samples []*models.LocationSample) *models.StatsSnapshot {
	filteredRoster := roster
	if filter.Unit != "" {
		filteredRoster = make([]*models.Operative, 0, len(roster))
		for _, op := range roster {
			if op.Unit == filter.Unit {
				filteredRoster = append(filteredRoster, op)
			}
		}
	}

	snapshot := &models.StatsSnapshot{
		TotalOperatives: len(filteredRoster),
		PerUnit:         []models.UnitActivity{},
		PerDay:          []models.DayDistance{},
		TopDistance:     []models.DistanceRank{},
	}

	units := []string{}
	seenUnit := map[string]bool{}
	for _, op := range filteredRoster {
		if op.Active && op.Approved {
			snapshot.ActiveNow++
		}
		if op.Unit != "" && !seenUnit[op.Unit] {
			seenUnit[op.Unit] = true
			units = append(units, op.Unit)
		}
	}
	snapshot.Units = len(units)

	for _, unit := range units {
		activity := models.UnitActivity{Unit: unit}
		for _, op := range filteredRoster {
			if op.Unit == unit && op.Active && op.Approved {
				activity.ActiveOperatives++
			}
		}
		snapshot.PerUnit = append(snapshot.PerUnit, activity)
	}

	byOperative := map[string][]*models.LocationSample{}
	for _, s := range samples {
		id := s.OperativeID.String()
		byOperative[id] = append(byOperative[id], s)
	}

	// Distance per operative, roster order. Sorting before summing
	// makes the result independent of fetch order.
	var totalKm float64
	ranking := []models.DistanceRank{}
	for _, op := range filteredRoster {
		km := pathDistanceKm(byOperative[op.ID.String()])
		totalKm += km
		if km > 0 {
			ranking = append(ranking, models.DistanceRank{
				OperativeID: op.ID.String(),
				Name:        op.Name,
				Km:          km,
			})
		}
	}
	snapshot.DistanceKm = roundKm(totalKm)

	// Rank on raw distances; rounding first would collapse near-ties.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Km > ranking[j].Km
	})
	if len(ranking) > 3 {
		ranking = ranking[:3]
	}
	for i := range ranking {
		ranking[i].Km = roundKm(ranking[i].Km)
	}
	snapshot.TopDistance = ranking

	snapshot.AvgSharingHours = avgSharingHours(byOperative)

	snapshot.PerDay = perDayDistances(samples)

	return snapshot
}

// pathDistanceKm sums consecutive haversine segments after sorting by
// timestamp. Segments touching a null coordinate contribute zero.
func pathDistanceKm(samples []*models.LocationSample) float64 {
	if len(samples) < 2 {
		return 0
	}
	ordered := make([]*models.LocationSample, len(samples))
	copy(ordered, samples)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var km float64
	for i := 1; i < len(ordered); i++ {
		km += utils.SegmentKm(
			ordered[i-1].Latitude, ordered[i-1].Longitude,
			ordered[i].Latitude, ordered[i].Longitude,
		)
	}
	return km
}

// avgSharingHours averages, over operatives with at least one sample,
// the count of distinct wall-clock minutes carrying a sample. Minutes
// are identified by hour and minute only, so the same time of day on
// two dates collapses into one bucket. That undercounts multi-day
// windows; kept as-is pending product clarification.
func avgSharingHours(byOperative map[string][]*models.LocationSample) float64 {
	if len(byOperative) == 0 {
		return 0
	}

	var totalMinutes int
	for _, samples := range byOperative {
		minutes := map[int]bool{}
		for _, s := range samples {
			minutes[s.CreatedAt.Hour()*60+s.CreatedAt.Minute()] = true
		}
		totalMinutes += len(minutes)
	}

	mean := float64(totalMinutes) / float64(len(byOperative))
	return roundKm(mean / 60)
}

// perDayDistances groups the window by calendar day and sums each
// operative's sorted path within that day, ordered by day ascending.
func perDayDistances(samples []*models.LocationSample) []models.DayDistance {
	byDay := map[string]map[string][]*models.LocationSample{}
	for _, s := range samples {
		day := s.CreatedAt.Format("2006-01-02")
		if byDay[day] == nil {
			byDay[day] = map[string][]*models.LocationSample{}
		}
		id := s.OperativeID.String()
		byDay[day][id] = append(byDay[day][id], s)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]models.DayDistance, 0, len(days))
	for _, day := range days {
		var km float64
		for _, perOperative := range byDay[day] {
			km += pathDistanceKm(perOperative)
		}
		result = append(result, models.DayDistance{Day: day, Km: roundKm(km)})
	}
	return result
}

func roundKm(v float64) float64 {
	return math.Round(v*100) / 100
}
