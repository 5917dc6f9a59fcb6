package usecase

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// GetOperative retrieves a single operative by ID
func (uc *OperativeUC) GetOperative(ctx context.Context, id string) (*models.Operative, error) {
	return uc.repo.GetOperativeByID(ctx, id)
}

// ListOperatives returns the roster ordered by name
func (uc *OperativeUC) ListOperatives(ctx context.Context) ([]*models.Operative, error) {
	return uc.repo.ListOperatives(ctx)
}

// Approve marks a pending registration as approved
func (uc *OperativeUC) Approve(ctx context.Context, id string) error {
	if err := uc.repo.SetApproved(ctx, id, true); err != nil {
		return err
	}
	logger.Info("Operative approved", logger.String("operative_id", id))
	return nil
}

// Block disables an account so it can no longer log in
func (uc *OperativeUC) Block(ctx context.Context, id string) error {
	if err := uc.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	logger.Info("Operative blocked", logger.String("operative_id", id))
	return nil
}

// Unblock restores access for a blocked account
func (uc *OperativeUC) Unblock(ctx context.Context, id string) error {
	if err := uc.repo.SetActive(ctx, id, true); err != nil {
		return err
	}
	logger.Info("Operative unblocked", logger.String("operative_id", id))
	return nil
}

// Promote elevates an operative to admin
func (uc *OperativeUC) Promote(ctx context.Context, id string) error {
	if err := uc.repo.SetRole(ctx, id, models.RoleAdmin); err != nil {
		return err
	}
	logger.Info("Operative promoted to admin", logger.String("operative_id", id))
	return nil
}

// Demote returns an admin to the operational role
func (uc *OperativeUC) Demote(ctx context.Context, id string) error {
	if err := uc.repo.SetRole(ctx, id, models.RoleOperational); err != nil {
		return err
	}
	logger.Info("Operative demoted to operational", logger.String("operative_id", id))
	return nil
}

// Delete permanently removes an operative and its location history
func (uc *OperativeUC) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteOperative(ctx, id); err != nil {
		return err
	}
	logger.Info("Operative deleted", logger.String("operative_id", id))
	return nil
}
