package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// TokenStore persists the access token cached on a user record.
type TokenStore interface {
	SetAccessToken(ctx context.Context, id uuid.UUID, token string) (model.User, error)
}

// TokenService issues access tokens and caches them on the user record.
// A cached token is reused until it is cleared; there is no rotation.
type TokenService struct {
	manager model.TokenManager
	store   TokenStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store TokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger}
}

// Issue returns the token cached on user, minting and persisting one if absent.
func (s *TokenService) Issue(ctx context.Context, user model.User) (string, error) {
	if user.AccessToken != "" {
		return user.AccessToken, nil
	}

	token, err := s.manager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}

	if _, err := s.store.SetAccessToken(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("persist access: %w", err)
	}

	s.logger.Debug("Token service: access token issued",
		"user_id", user.ID)

	return token, nil
}
