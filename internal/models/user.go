package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the grade assigned to a user.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// UserDB represents a permanent user record in the database.
type UserDB struct {
	ID        int64     `json:"-" db:"id"`                  // Storage-only primary key
	UUID      uuid.UUID `json:"uuid" db:"uuid"`             // Public identifier, never reused
	Email     *string   `json:"email" db:"email"`           // Optional email, unique when set
	Role      Role      `json:"role" db:"role"`             // Grade
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// CredentialDB represents local email/password credentials of a user.
type CredentialDB struct {
	UserID       int64     `db:"user_id"`
	LoginID      string    `db:"login_id"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// ProfileDB represents the public profile of a user.
type ProfileDB struct {
	UserID    int64     `db:"user_id"`
	Nickname  string    `db:"nickname"`
	Avatar    *string   `db:"avatar"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Identity is what callers need to mint tokens for a user.
type Identity struct {
	UUID uuid.UUID `json:"uuid" db:"uuid"`
	Role Role      `json:"role" db:"role"`
}

// LocalAccount is the projection used by password sign-in.
type LocalAccount struct {
	Identity
	PasswordHash string `db:"password_hash"`
}
