package usecase

import (
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/services/operatives"
)

// OperativeUC implements the operatives.OperativeUC interface
type OperativeUC struct {
	repo operatives.OperativeRepo
	cfg  *models.Config
}

// NewOperativeUC creates a new operative use case
func NewOperativeUC(repo operatives.OperativeRepo, cfg *models.Config) operatives.OperativeUC {
	return &OperativeUC{
		repo: repo,
		cfg:  cfg,
	}
}
