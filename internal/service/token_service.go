package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/coursehub/coursehub-server/internal/auth"
	"github.com/coursehub/coursehub-server/internal/logger"
	"github.com/coursehub/coursehub-server/internal/model"
)

// TokenService mints and verifies the two token kinds and owns the rotation
// policy. Issue and Refresh are the only paths that write the stored refresh
// digest, so the store and the service never disagree about which refresh
// token is current.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

// Issue mints an access+refresh pair for the user and mirrors the refresh
// digest on the user record, invalidating any previously issued refresh token.
func (s *TokenService) Issue(ctx context.Context, user model.User) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	if err := s.users.SetRefreshToken(ctx, user.ID, auth.HashToken(refresh)); err != nil {
		return "", "", fmt.Errorf("persist refresh: %w", err)
	}

	return access, refresh, nil
}

// Refresh runs the rotation protocol: verify the presented refresh token
// cryptographically, then swap the stored digest for a new one in a single
// conditional write. A presented token that verifies but no longer matches
// the stored digest has already been rotated away and fails ErrTokenReused;
// it is never upgraded to a fresh pair.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, newRefresh string, err error) {
	userID, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return "", "", model.ErrTokenInvalid
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to get user by id: %w", err)
	}

	presentedDigest := auth.HashToken(presentedRefresh)
	if !auth.EqualDigests(user.RefreshTokenHash, presentedDigest) {
		s.logger.Warn("Token service: refresh token reuse detected",
			"user_id", userID)
		return "", "", model.ErrTokenReused
	}

	access, err := s.manager.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("issue new access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("issue new refresh: %w", err)
	}

	// The conditional write is the real gate: of two concurrent refreshes
	// presenting the same token, exactly one lands and the other observes
	// the already-rotated digest.
	err = s.users.RotateRefreshToken(ctx, user.ID, presentedDigest, auth.HashToken(refresh))
	if errors.Is(err, model.ErrTokenReused) {
		s.logger.Warn("Token service: lost refresh rotation race",
			"user_id", userID)
		return "", "", model.ErrTokenReused
	}
	if err != nil {
		return "", "", fmt.Errorf("rotate refresh: %w", err)
	}

	return access, refresh, nil
}

// Revoke clears the stored refresh digest, ending the user's session. Any
// outstanding refresh token can no longer match.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("clear refresh: %w", err)
	}
	return nil
}

// GetUserID verifies an access token and returns the user key it carries.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}
