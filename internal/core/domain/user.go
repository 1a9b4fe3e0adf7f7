package domain

import "time"

// User represents an application user within the core domain.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialized
	AuditFields

	// Refresh token state for the front-end session cycle. Only the SHA256
	// hash of the token is stored; the raw token lives in an HTTP-only cookie.
	RefreshTokenHash      string     `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
}
