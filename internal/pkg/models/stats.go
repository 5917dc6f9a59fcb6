package models

import (
	"time"
)

// StatsFilter is the aggregation window plus optional unit and
// operative narrowing. Zero dates mean "trailing 7 days through
// today"; bounds are inclusive day bounds.
type StatsFilter struct {
	Start       time.Time `json:"start" query:"start"`
	End         time.Time `json:"end" query:"end"`
	Unit        string    `json:"unit" query:"unit"`
	OperativeID string    `json:"operative_id" query:"operative_id"`
}

// Normalize fills missing dates with the default trailing week and
// returns the effective sample timestamp bounds.
func (f StatsFilter) Normalize(now time.Time) (StatsFilter, time.Time, time.Time) {
	if f.End.IsZero() {
		f.End = now
	}
	if f.Start.IsZero() {
		f.Start = f.End.AddDate(0, 0, -6)
	}
	from := time.Date(f.Start.Year(), f.Start.Month(), f.Start.Day(), 0, 0, 0, 0, f.Start.Location())
	to := time.Date(f.End.Year(), f.End.Month(), f.End.Day(), 23, 59, 59, 0, f.End.Location())
	return f, from, to
}

// UnitActivity counts the active approved operatives of one unit.
type UnitActivity struct {
	Unit             string `json:"unit"`
	ActiveOperatives int    `json:"active_operatives"`
}

// DayDistance is the total distance covered on one calendar day.
type DayDistance struct {
	Day string  `json:"day"` // YYYY-MM-DD
	Km  float64 `json:"km"`
}

// DistanceRank is one entry of the top-distance ranking.
type DistanceRank struct {
	OperativeID string  `json:"operative_id"`
	Name        string  `json:"name"`
	Km          float64 `json:"km"`
}

// StatsSnapshot is the fully derived dashboard state for one filter.
// It is recomputed from scratch on every request; nothing here is
// persisted or incrementally maintained.
type StatsSnapshot struct {
	TotalOperatives int            `json:"total_operatives"`
	ActiveNow       int            `json:"active_now"`
	Units           int            `json:"units"`
	DistanceKm      float64        `json:"distance_km"`
	AvgSharingHours float64        `json:"avg_sharing_hours"`
	PerUnit         []UnitActivity `json:"per_unit"`
	PerDay          []DayDistance  `json:"per_day"`
	TopDistance     []DistanceRank `json:"top_distance"`
}

// ExportRow is one flattened line of the location report.
type ExportRow struct {
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	DateTime  string   `json:"datetime"` // dd/mm/yy, hh:mm:ss local
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Heading   *float64 `json:"heading"`
	Speed     *float64 `json:"speed"`
}

// Partitions groups export rows into the three sheet families of the
// report workbook. ByDay keys use hyphens instead of the display
// date's slashes so they stay filesystem and sheet-name safe.
type Partitions struct {
	ByOperative map[string][]ExportRow
	ByUnit      map[string][]ExportRow
	ByDay       map[string][]ExportRow
}
