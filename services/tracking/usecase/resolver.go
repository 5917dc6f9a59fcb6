package usecase

import (
	"github.com/google/uuid"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// LastActiveSample picks an operative's most recent active sample from
// an already-fetched collection. The ingest protocol keeps at most one
// sample active per operative, but a fetch can race the retire/insert
// transition and briefly observe more than one; the latest creation
// timestamp wins. Nil means no marker, not an error.
func LastActiveSample(operativeID uuid.UUID, samples []*models.LocationSample) *models.LocationSample {
	var last *models.LocationSample
	for _, s := range samples {
		if s == nil || s.OperativeID != operativeID || !s.Active {
			continue
		}
		if last == nil || s.CreatedAt.After(last.CreatedAt) {
			last = s
		}
	}
	return last
}
