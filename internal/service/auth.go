package service

import (
	"context"
	"errors"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// UserAccounts is the part of the user service Auth depends on.
type UserAccounts interface {
	TokenStore
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type Auth struct {
	users        UserAccounts
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	users UserAccounts,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		hasher:       hasher,
		tokenService: NewTokenService(tokenManager, users, logger),
		logger:       logger,
	}
}

// SignIn checks credentials and returns the user with its access token.
// Unknown emails and wrong passwords both yield Unauthorized.
func (a *Auth) SignIn(ctx context.Context, email, password string) (model.SignInResult, error) {
	a.logger.Debug("Auth service: signing in",
		"email", email)

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apierrors.ErrNotFound) {
			a.logger.Info("Auth service: unknown email",
				"email", email)
			return model.SignInResult{}, apierrors.NewErrUnauthorized()
		}
		a.logger.Error("Auth service: failed to find user",
			"email", email,
			"error", err.Error())
		return model.SignInResult{}, apierrors.NewErrInternalServerError(err)
	}

	// invited users have no password until activation
	if user.Password == "" {
		a.logger.Info("Auth service: user has no password",
			"user_id", user.ID)
		return model.SignInResult{}, apierrors.NewErrUnauthorized()
	}

	ok, err := a.hasher.Verify(password, user.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return model.SignInResult{}, apierrors.NewErrInternalServerError(err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.SignInResult{}, apierrors.NewErrUnauthorized()
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue access token",
			"user_id", user.ID,
			"error", err.Error())
		return model.SignInResult{}, apierrors.NewErrInternalServerError(err)
	}

	user.AccessToken = token

	a.logger.Info("Auth service: user signed in",
		"user_id", user.ID)

	return model.SignInResult{
		User:        user.WithoutPassword(),
		AccessToken: token,
	}, nil
}
