package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

func TestApprove(t *testing.T) {
	uc, repo := newTestOperativeUC(t)
	id := uuid.New().String()

	repo.EXPECT().SetApproved(gomock.Any(), id, true).Return(nil)

	assert.NoError(t, uc.Approve(context.Background(), id))
}

func TestBlockUnblock(t *testing.T) {
	uc, repo := newTestOperativeUC(t)
	id := uuid.New().String()

	repo.EXPECT().SetActive(gomock.Any(), id, false).Return(nil)
	assert.NoError(t, uc.Block(context.Background(), id))

	repo.EXPECT().SetActive(gomock.Any(), id, true).Return(nil)
	assert.NoError(t, uc.Unblock(context.Background(), id))
}

func TestPromoteDemote(t *testing.T) {
	uc, repo := newTestOperativeUC(t)
	id := uuid.New().String()

	repo.EXPECT().SetRole(gomock.Any(), id, models.RoleAdmin).Return(nil)
	assert.NoError(t, uc.Promote(context.Background(), id))

	repo.EXPECT().SetRole(gomock.Any(), id, models.RoleOperational).Return(nil)
	assert.NoError(t, uc.Demote(context.Background(), id))
}

func TestApprove_UnknownOperative(t *testing.T) {
	uc, repo := newTestOperativeUC(t)
	id := uuid.New().String()

	repo.EXPECT().SetApproved(gomock.Any(), id, true).
		Return(apperrors.New(apperrors.KindProfileNotFound, "operative not found"))

	err := uc.Approve(context.Background(), id)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindProfileNotFound, apperrors.KindOf(err))
}

func TestDelete(t *testing.T) {
	uc, repo := newTestOperativeUC(t)
	id := uuid.New().String()

	repo.EXPECT().DeleteOperative(gomock.Any(), id).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), id))
}
