package operatives

import (
	"context"

	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// OperativeRepo defines the data access methods for operative
// accounts and their login credentials.
type OperativeRepo interface {
	CreateAccount(ctx context.Context, cred *models.Credential, operative *models.Operative) error
	GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	GetOperativeByID(ctx context.Context, id string) (*models.Operative, error)
	GetOperativeByAuthID(ctx context.Context, authID string) (*models.Operative, error)
	ListOperatives(ctx context.Context) ([]*models.Operative, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role models.Role) error
	DeleteOperative(ctx context.Context, id string) error
}

// OperativeUC defines the business operations on operative accounts.
type OperativeUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Operative, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetOperative(ctx context.Context, id string) (*models.Operative, error)
	ListOperatives(ctx context.Context) ([]*models.Operative, error)
	Approve(ctx context.Context, id string) error
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
	Promote(ctx context.Context, id string) error
	Demote(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
