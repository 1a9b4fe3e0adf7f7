package services

import (
	"context"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
)

// TokenPair carries a freshly issued access token and the raw refresh token
// with its expiry. The raw refresh token is returned exactly once; only its
// hash is stored.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenSvc issues and rotates the token pair backing the front-end session
// cycle.
type TokenSvc interface {
	// Login verifies credentials and issues a fresh token pair.
	Login(ctx context.Context, username, password string) (*domain.User, *TokenPair, error)

	// Refresh validates a raw refresh token and rotates it, issuing a new pair.
	Refresh(ctx context.Context, rawRefreshToken string) (*domain.User, *TokenPair, error)

	// Logout invalidates the user's stored refresh token.
	Logout(ctx context.Context, userID string) error
}
