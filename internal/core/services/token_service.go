package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/apperrors"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/domain"
	portsrepo "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/repositories"
	portssvc "github.com/OndrejKutil/budgeting-dashboard-sub000/internal/core/ports/services"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/platform/config"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/internal/utils"
)

const refreshTokenBytes = 32

// tokenService issues JWT access tokens and rotating opaque refresh tokens.
// Refresh tokens are single-use: every successful refresh replaces the
// stored hash, so a replayed token fails the lookup.
type tokenService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewTokenService creates a new token service with its dependencies
func NewTokenService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

// Login verifies credentials and issues a fresh token pair.
func (s *tokenService) Login(ctx context.Context, username, password string) (*domain.User, *portssvc.TokenPair, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user during login")
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed: bad password", slog.String("user_id", user.UserID))
		return nil, nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	pair, err := s.issueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, pair, nil
}

// Refresh validates a raw refresh token and rotates it. An expired or
// unknown token yields ErrUnauthorized.
func (s *tokenService) Refresh(ctx context.Context, rawRefreshToken string) (*domain.User, *portssvc.TokenPair, error) {
	if rawRefreshToken == "" {
		return nil, nil, fmt.Errorf("%w: missing refresh token", apperrors.ErrUnauthorized)
	}

	tokenHash := utils.HashRefreshToken(rawRefreshToken)
	user, err := s.userRepo.FindUserByRefreshTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: invalid refresh token", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up refresh token")
		return nil, nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if user.RefreshTokenExpiresAt == nil || time.Now().After(*user.RefreshTokenExpiresAt) {
		s.LogWarn(ctx, "Refresh failed: token expired", slog.String("user_id", user.UserID))
		return nil, nil, fmt.Errorf("%w: refresh token expired", apperrors.ErrUnauthorized)
	}

	pair, err := s.issueTokenPair(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Refresh token rotated", slog.String("user_id", user.UserID))
	return user, pair, nil
}

// Logout invalidates the stored refresh token. The access token stays valid
// until it expires on its own.
func (s *tokenService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("user_id", userID))
	return nil
}

func (s *tokenService) issueTokenPair(ctx context.Context, userID string) (*portssvc.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	rawRefresh, err := utils.GenerateSecureRandomString(refreshTokenBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate refresh token")
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, utils.HashRefreshToken(rawRefresh), expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token")
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &portssvc.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     rawRefresh,
		RefreshExpiresAt: expiresAt,
	}, nil
}
