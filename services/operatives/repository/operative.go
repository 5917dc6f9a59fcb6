package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nmfalves/sentinela/internal/pkg/apperrors"
	"github.com/nmfalves/sentinela/internal/pkg/models"
	"github.com/nmfalves/sentinela/services/operatives"
)

// OperativeRepo implements operatives.OperativeRepo on PostgreSQL.
type OperativeRepo struct {
	db *sqlx.DB
}

// NewOperativeRepo creates a new operative repository
func NewOperativeRepo(db *sqlx.DB) operatives.OperativeRepo {
	return &OperativeRepo{db: db}
}

// CreateAccount inserts the credential and the operative profile in
// one transaction so a half-registered account can never log in.
func (r *OperativeRepo) CreateAccount(ctx context.Context, cred *models.Credential, operative *models.Operative) error {
	if cred.ID == uuid.Nil {
		cred.ID = uuid.New()
	}
	if operative.ID == uuid.Nil {
		operative.ID = uuid.New()
	}
	operative.AuthID = cred.ID

	now := time.Now()
	cred.CreatedAt = now
	operative.CreatedAt = now
	operative.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	credQuery := `
		INSERT INTO credentials (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)
	`
	if _, err = tx.NamedExecContext(ctx, credQuery, cred); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to insert credential", err)
	}

	opQuery := `
		INSERT INTO operatives (id, auth_id, name, unit, phone, role,
			approved, active, created_at, updated_at
		) VALUES (:id, :auth_id, :name, :unit, :phone, :role,
			:approved, :active, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, opQuery, operative); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to insert operative", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetCredentialByEmail retrieves a login credential by email
func (r *OperativeRepo) GetCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM credentials
		WHERE email = $1
	`

	var cred models.Credential
	err := r.db.GetContext(ctx, &cred, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindAuthError, "invalid credentials")
		}
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to get credential", err)
	}

	return &cred, nil
}

// GetOperativeByID retrieves an operative by ID
func (r *OperativeRepo) GetOperativeByID(ctx context.Context, id string) (*models.Operative, error) {
	return r.getOperativeByField(ctx, "id", id)
}

// GetOperativeByAuthID retrieves an operative by its credential ID
func (r *OperativeRepo) GetOperativeByAuthID(ctx context.Context, authID string) (*models.Operative, error) {
	return r.getOperativeByField(ctx, "auth_id", authID)
}

func (r *OperativeRepo) getOperativeByField(ctx context.Context, field, value string) (*models.Operative, error) {
	query := fmt.Sprintf(`
		SELECT id, auth_id, name, unit, phone, role, approved, active, created_at, updated_at
		FROM operatives WHERE %s = $1
	`, field)

	var operative models.Operative
	err := r.db.GetContext(ctx, &operative, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.New(apperrors.KindProfileNotFound, "operative not found")
		}
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to get operative", err)
	}

	return &operative, nil
}

// ListOperatives returns the full roster ordered by name.
func (r *OperativeRepo) ListOperatives(ctx context.Context) ([]*models.Operative, error) {
	query := `
		SELECT id, auth_id, name, unit, phone, role, approved, active, created_at, updated_at
		FROM operatives
		ORDER BY name ASC
	`

	operativesList := []*models.Operative{}
	if err := r.db.SelectContext(ctx, &operativesList, query); err != nil {
		return nil, apperrors.Wrap(apperrors.KindFetchFailed, "failed to list operatives", err)
	}

	return operativesList, nil
}

// SetApproved updates the approval flag of an operative
func (r *OperativeRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.updateFlag(ctx, "approved", id, approved)
}

// SetActive updates the active (blocked/unblocked) flag of an operative
func (r *OperativeRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.updateFlag(ctx, "active", id, active)
}

func (r *OperativeRepo) updateFlag(ctx context.Context, column, id string, value bool) error {
	query := fmt.Sprintf(`
		UPDATE operatives SET %s = $1, updated_at = $2 WHERE id = $3
	`, column)

	result, err := r.db.ExecContext(ctx, query, value, time.Now(), id)
	if err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to update operative", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindProfileNotFound, "operative not found")
	}

	return nil
}

// SetRole updates the role of an operative
func (r *OperativeRepo) SetRole(ctx context.Context, id string, role models.Role) error {
	query := `
		UPDATE operatives SET role = $1, updated_at = $2 WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, role, time.Now(), id)
	if err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to update role", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindProfileNotFound, "operative not found")
	}

	return nil
}

// DeleteOperative removes an operative together with its samples and
// login credential in one transaction. The FK cascade only runs
// credential to operative, so the credential row has to go explicitly
// or its email can never register again.
func (r *OperativeRepo) DeleteOperative(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authID string
	if err = tx.GetContext(ctx, &authID, `SELECT auth_id FROM operatives WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.New(apperrors.KindProfileNotFound, "operative not found")
		}
		return apperrors.Wrap(apperrors.KindFetchFailed, "failed to load operative", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM location_samples WHERE operative_id = $1`, id); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to delete location samples", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM operatives WHERE id = $1`, id); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to delete operative", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM credentials WHERE id = $1`, authID); err != nil {
		return apperrors.Wrap(apperrors.KindWriteFailed, "failed to delete credential", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
