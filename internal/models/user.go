package models

import "database/sql"

// User is the database representation of an application user.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	AuditFields

	RefreshTokenHash      sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiresAt sql.NullTime   `db:"refresh_token_expires_at"`
}
