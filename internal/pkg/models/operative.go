package models

import (
	"time"

	"github.com/google/uuid"
)

// Role enumerates the access levels of an operative account.
type Role string

const (
	RoleOperational Role = "operational"
	RoleCommand     Role = "command"
	RoleAdmin       Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleOperational, RoleCommand, RoleAdmin:
		return true
	}
	return false
}

// CanManageOperatives reports whether the role may approve, block,
// promote or delete accounts and view the command dashboard.
func (r Role) CanManageOperatives() bool {
	return r == RoleCommand || r == RoleAdmin
}

// Operative represents a field user account. Approved gates login
// after registration; Active distinguishes an enabled account from
// one blocked by command staff (it does not mean "currently sharing").
type Operative struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AuthID    uuid.UUID `json:"auth_id" db:"auth_id"`
	Name      string    `json:"name" db:"name"`
	Unit      string    `json:"unit" db:"unit"`
	Phone     string    `json:"phone" db:"phone"`
	Role      Role      `json:"role" db:"role"`
	Approved  bool      `json:"approved" db:"approved"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest carries the self-registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expires_at"`
	Operative *Operative `json:"operative"`
}
