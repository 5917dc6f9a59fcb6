package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential is a login identity. Operatives reference it through
// AuthID; profile data lives on the Operative row, never here.
type Credential struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
