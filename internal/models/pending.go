package models

import "time"

// PendingRegistrationDB is a signup awaiting email confirmation.
type PendingRegistrationDB struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	LoginID      string    `db:"login_id"`
	Nickname     string    `db:"nickname"`
	PasswordHash string    `db:"password_hash"`
	Code         string    `db:"code"`
	ResendCount  int       `db:"resend_count"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
