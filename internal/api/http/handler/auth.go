package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// AuthService defines the login operation.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (model.SignInResult, error)
}

// Auth handles HTTP endpoints under /auth.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// SignIn exchanges email and password for an access token.
func (h *Auth) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, err)
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	result, err := h.authService.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", result.User.ID)

	return respondOK(c, SignInResponse{
		User:        newUserResponse(result.User),
		AccessToken: result.AccessToken,
	})
}
