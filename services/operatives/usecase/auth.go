package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	jwtpkg "github.com/nmfalves/sentinela/internal/pkg/jwt"
	"github.com/nmfalves/sentinela/internal/pkg/logger"
	"github.com/nmfalves/sentinela/internal/pkg/models"
)

// Register creates a credential and a pending operative profile.
// New accounts wait for command approval before they can log in.
func (uc *OperativeUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.Operative, error) {
	if req.Name == "" || req.Unit == "" || req.Email == "" || req.Password == "" {
		return nil, apperrors.New(apperrors.KindAuthError, "name, unit, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindWriteFailed, "failed to hash password", err)
	}

	cred := &models.Credential{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
	}
	operative := &models.Operative{
		Name:     req.Name,
		Unit:     req.Unit,
		Phone:    req.Phone,
		Role:     models.RoleOperational,
		Approved: false,
		Active:   true,
	}

	if err := uc.repo.CreateAccount(ctx, cred, operative); err != nil {
		return nil, err
	}

	logger.Info("Operative registered, awaiting approval",
		logger.String("operative_id", operative.ID.String()),
		logger.String("unit", operative.Unit))

	return operative, nil
}

// Login verifies credentials and account state, then issues a token.
// Unapproved and blocked accounts get distinct messages so the user
// knows whether to wait or to contact command.
func (uc *OperativeUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	cred, err := uc.repo.GetCredentialByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.New(apperrors.KindAuthError, "invalid credentials")
	}

	operative, err := uc.repo.GetOperativeByAuthID(ctx, cred.ID.String())
	if err != nil {
		// A credential without a profile cannot proceed.
		return nil, apperrors.Wrap(apperrors.KindProfileNotFound, "failed to load operative profile", err)
	}

	if !operative.Approved {
		return nil, apperrors.New(apperrors.KindAuthError, "account pending command approval")
	}
	if !operative.Active {
		return nil, apperrors.New(apperrors.KindAuthError, "account blocked, contact command")
	}

	token, expiresAt, err := jwtpkg.GenerateToken(operative.ID, operative.Role, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindAuthError, "failed to generate token", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Operative: operative,
	}, nil
}
