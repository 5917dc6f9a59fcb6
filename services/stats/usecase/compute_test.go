package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// kmToLatDegrees converts a north-south distance into a latitude
// offset, letting tests construct paths of known length.
func kmToLatDegrees(km float64) float64 {
	return km / 111.19
}

func newOperative(name, unit string, active, approved bool) *models.Operative {
	return &models.Operative{
		ID:       uuid.New(),
		Name:     name,
		Unit:     unit,
		Role:     models.RoleOperational,
		Active:   active,
		Approved: approved,
	}
}

func newSample(op *models.Operative, at time.Time, lat, lon float64) *models.LocationSample {
	return &models.LocationSample{
		ID:          uuid.New(),
		OperativeID: op.ID,
		Latitude:    &lat,
		Longitude:   &lon,
		CreatedAt:   at,
	}
}

// pathSamples builds a two-point northward path of roughly the given
// length for one operative.
func pathSamples(op *models.Operative, start time.Time, km float64) []*models.LocationSample {
	return []*models.LocationSample{
		newSample(op, start, 38.0, -9.0),
		newSample(op, start.Add(10*time.Minute), 38.0+kmToLatDegrees(km), -9.0),
	}
}

func TestComputeSnapshot_EmptySamples(t *testing.T) {
	roster := []*models.Operative{
		newOperative("Ana", "Alpha", true, true),
		newOperative("Bruno", "Bravo", true, false),
		newOperative("Carla", "Alpha", false, true),
	}

	snapshot := ComputeSnapshot(models.StatsFilter{}, roster, nil)

	assert.Equal(t, 3, snapshot.TotalOperatives)
	assert.Equal(t, 1, snapshot.ActiveNow, "only active AND approved count")
	assert.Equal(t, 2, snapshot.Units)
	assert.Zero(t, snapshot.DistanceKm)
	assert.Zero(t, snapshot.AvgSharingHours)
	assert.Empty(t, snapshot.TopDistance)
	assert.Empty(t, snapshot.PerDay)
}

func TestComputeSnapshot_UnitFilter(t *testing.T) {
	roster := []*models.Operative{
		newOperative("Ana", "Alpha", true, true),
		newOperative("Bruno", "Bravo", true, true),
		newOperative("Carla", "Alpha", true, true),
	}

	snapshot := ComputeSnapshot(models.StatsFilter{Unit: "Alpha"}, roster, nil)

	assert.Equal(t, 2, snapshot.TotalOperatives)
	assert.Equal(t, 2, snapshot.ActiveNow)
	assert.Equal(t, 1, snapshot.Units)
	require.Len(t, snapshot.PerUnit, 1)
	assert.Equal(t, "Alpha", snapshot.PerUnit[0].Unit)
	assert.Equal(t, 2, snapshot.PerUnit[0].ActiveOperatives)
}

func TestComputeSnapshot_EmptyUnitLabelNotCounted(t *testing.T) {
	roster := []*models.Operative{
		newOperative("Ana", "", true, true),
		newOperative("Bruno", "Bravo", true, true),
	}

	snapshot := ComputeSnapshot(models.StatsFilter{}, roster, nil)

	assert.Equal(t, 1, snapshot.Units)
	require.Len(t, snapshot.PerUnit, 1)
	assert.Equal(t, "Bravo", snapshot.PerUnit[0].Unit)
}

func TestComputeSnapshot_DistanceIndependentOfSampleOrder(t *testing.T) {
	op := newOperative("Ana", "Alpha", true, true)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	s1 := newSample(op, base, 38.0, -9.0)
	s2 := newSample(op, base.Add(5*time.Minute), 38.1, -9.0)
	s3 := newSample(op, base.Add(10*time.Minute), 38.1, -9.2)

	roster := []*models.Operative{op}
	permutations := [][]*models.LocationSample{
		{s1, s2, s3},
		{s3, s1, s2},
		{s2, s3, s1},
		{s3, s2, s1},
	}

	var first float64
	for i, samples := range permutations {
		snapshot := ComputeSnapshot(models.StatsFilter{}, roster, samples)
		if i == 0 {
			first = snapshot.DistanceKm
			assert.Greater(t, first, 0.0)
			continue
		}
		assert.Equal(t, first, snapshot.DistanceKm,
			"distance must not depend on input order")
	}
}

func TestComputeSnapshot_RankingTopThreeStable(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	ana := newOperative("Ana", "Alpha", true, true)       // 10 km
	bruno := newOperative("Bruno", "Alpha", true, true)   // 30 km
	carla := newOperative("Carla", "Alpha", true, true)   // 5 km
	diogo := newOperative("Diogo", "Alpha", true, true)   // 30 km
	elsa := newOperative("Elsa", "Alpha", true, true)     // no movement

	samples := []*models.LocationSample{}
	samples = append(samples, pathSamples(ana, base, 10)...)
	samples = append(samples, pathSamples(bruno, base, 30)...)
	samples = append(samples, pathSamples(carla, base, 5)...)
	samples = append(samples, pathSamples(diogo, base, 30)...)
	samples = append(samples, newSample(elsa, base, 38.0, -9.0))

	roster := []*models.Operative{ana, bruno, carla, diogo, elsa}
	snapshot := ComputeSnapshot(models.StatsFilter{}, roster, samples)

	require.Len(t, snapshot.TopDistance, 3)
	assert.Equal(t, "Bruno", snapshot.TopDistance[0].Name,
		"first-encountered 30 km ranks first")
	assert.Equal(t, "Diogo", snapshot.TopDistance[1].Name)
	assert.Equal(t, "Ana", snapshot.TopDistance[2].Name)

	assert.Equal(t, 5, snapshot.TotalOperatives,
		"excluded from ranking still counts in totals")
}

func TestComputeSnapshot_RankingOrdersBelowDisplayPrecision(t *testing.T) {
	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	// Both distances display as 10.0 km; the raw values still decide
	// the order, regardless of roster position.
	ana := newOperative("Ana", "Alpha", true, true)
	bruno := newOperative("Bruno", "Alpha", true, true)

	samples := []*models.LocationSample{}
	samples = append(samples, pathSamples(ana, base, 10.001)...)
	samples = append(samples, pathSamples(bruno, base, 10.004)...)

	roster := []*models.Operative{ana, bruno}
	snapshot := ComputeSnapshot(models.StatsFilter{}, roster, samples)

	require.Len(t, snapshot.TopDistance, 2)
	assert.Equal(t, "Bruno", snapshot.TopDistance[0].Name)
	assert.Equal(t, "Ana", snapshot.TopDistance[1].Name)
	assert.Equal(t, 10.0, snapshot.TopDistance[0].Km)
	assert.Equal(t, 10.0, snapshot.TopDistance[1].Km)
}

func TestComputeSnapshot_NullCoordinatesContributeZero(t *testing.T) {
	op := newOperative("Ana", "Alpha", true, true)
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	s1 := newSample(op, base, 38.0, -9.0)
	s2 := newSample(op, base.Add(5*time.Minute), 0, 0)
	s2.Latitude = nil
	s2.Longitude = nil
	s3 := newSample(op, base.Add(10*time.Minute), 38.5, -9.0)

	snapshot := ComputeSnapshot(models.StatsFilter{},
		[]*models.Operative{op},
		[]*models.LocationSample{s1, s2, s3})

	assert.Zero(t, snapshot.DistanceKm,
		"both segments touch the null sample")
	assert.Empty(t, snapshot.TopDistance)
}

func TestComputeSnapshot_AvgSharingHours(t *testing.T) {
	op1 := newOperative("Ana", "Alpha", true, true)
	op2 := newOperative("Bruno", "Alpha", true, true)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	samples := []*models.LocationSample{
		// Ana: two distinct minutes (10:00 twice, 10:01 once)
		newSample(op1, day.Add(10*time.Hour+5*time.Second), 38.0, -9.0),
		newSample(op1, day.Add(10*time.Hour+45*time.Second), 38.0, -9.0),
		newSample(op1, day.Add(10*time.Hour+time.Minute+30*time.Second), 38.0, -9.0),
		// Bruno: one minute
		newSample(op2, day.Add(11*time.Hour), 38.0, -9.0),
	}

	snapshot := ComputeSnapshot(models.StatsFilter{},
		[]*models.Operative{op1, op2}, samples)

	// (2 + 1) / 2 operatives = 1.5 minutes -> 0.025 h -> 0.03
	assert.Equal(t, 0.03, snapshot.AvgSharingHours)
}

func TestComputeSnapshot_PerDayGroupsAndSorts(t *testing.T) {
	op := newOperative("Ana", "Alpha", true, true)
	day1 := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	samples := append(pathSamples(op, day1, 20), newSample(op, day2, 38.0, -9.0))

	snapshot := ComputeSnapshot(models.StatsFilter{},
		[]*models.Operative{op}, samples)

	require.Len(t, snapshot.PerDay, 2)
	assert.Equal(t, "2024-06-01", snapshot.PerDay[0].Day, "days sorted ascending")
	assert.Zero(t, snapshot.PerDay[0].Km)
	assert.Equal(t, "2024-06-02", snapshot.PerDay[1].Day)
	assert.InDelta(t, 20.0, snapshot.PerDay[1].Km, 0.5)
}

func TestComputeSnapshot_SingleSampleNoDistance(t *testing.T) {
	op := newOperative("Ana", "Alpha", true, true)
	sample := newSample(op, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), 38.0, -9.0)

	snapshot := ComputeSnapshot(models.StatsFilter{},
		[]*models.Operative{op},
		[]*models.LocationSample{sample})

	assert.Zero(t, snapshot.DistanceKm)
	assert.Empty(t, snapshot.TopDistance)
}
