package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// Users implements the user lifecycle: invitation, activation, CRUD.
type Users struct {
	store    model.UserStore
	hasher   model.PasswordHasher
	notifier model.Notifier
	logger   *logger.Logger
}

func NewUsers(
	store model.UserStore,
	hasher model.PasswordHasher,
	notifier model.Notifier,
	logger *logger.Logger,
) *Users {
	return &Users{
		store:    store,
		hasher:   hasher,
		notifier: notifier,
		logger:   logger,
	}
}

// Invite creates an inactive user and sends them an invitation.
// The record is kept when the notification fails.
func (s *Users) Invite(ctx context.Context, params model.InviteParams) (model.User, error) {
	s.logger.Debug("Users service: inviting user",
		"email", params.Email)

	if err := s.ensureEmailFree(ctx, params.Email, apierrors.NewErrUserAlreadyInvited); err != nil {
		return model.User{}, err
	}

	user, err := s.store.Create(ctx, model.User{
		ID:          uuid.New(),
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Email:       params.Email,
		IsActivated: false,
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrUserAlreadyInvited(params.Email)
		}
		return model.User{}, s.internal("failed to create invited user", err, "email", params.Email)
	}

	if err := s.notifier.SendInvitation(ctx, user.Email, user.FirstName, user.ID); err != nil {
		return model.User{}, s.internal("failed to send invitation", err, "user_id", user.ID)
	}

	s.logger.Info("Users service: user invited",
		"user_id", user.ID)

	return user.Public(), nil
}

// CreateDirect stores a user without the invitation flow. A supplied
// password is hashed before it is stored.
func (s *Users) CreateDirect(ctx context.Context, params model.CreateParams) (model.User, error) {
	if err := s.ensureEmailFree(ctx, params.Email, apierrors.NewErrUserAlreadyExists); err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:          uuid.New(),
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		Email:       params.Email,
		AccessToken: params.AccessToken,
	}

	if params.Password != "" {
		hash, err := s.hash(params.Password)
		if err != nil {
			return model.User{}, err
		}
		user.Password = hash
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrUserAlreadyExists(params.Email)
		}
		return model.User{}, s.internal("failed to create user", err, "email", params.Email)
	}

	s.logger.Info("Users service: user created",
		"user_id", created.ID)

	return created, nil
}

// FindAll returns every user without credentials. The result is never nil.
func (s *Users) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, s.internal("failed to list users", err)
	}

	public := make([]model.User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	return public, nil
}

func (s *Users) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.get(ctx, id, apierrors.NewErrUserNotFound)
	if err != nil {
		return model.User{}, err
	}
	return user.Public(), nil
}

// FindByEmail returns the stored record including the password hash.
func (s *Users) FindByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserEmailNotFound(email)
		}
		return model.User{}, s.internal("failed to get user by email", err, "email", email)
	}
	return user, nil
}

// Activate completes registration of an invited user. It can succeed only once.
func (s *Users) Activate(ctx context.Context, id uuid.UUID, params model.ActivateParams) (model.User, error) {
	s.logger.Debug("Users service: activating user",
		"user_id", id)

	user, err := s.get(ctx, id, apierrors.NewErrActivationUserNotFound)
	if err != nil {
		return model.User{}, err
	}

	if user.IsActivated {
		s.logger.Info("Users service: user already activated",
			"user_id", id)
		return model.User{}, apierrors.NewErrUserAlreadyActivated(id)
	}

	if params.FirstName != nil {
		user.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		user.LastName = *params.LastName
	}
	if params.Email != nil {
		user.Email = *params.Email
	}

	hash, err := s.hash(params.Password)
	if err != nil {
		return model.User{}, err
	}
	user.Password = hash
	user.IsActivated = true

	saved, err := s.save(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("Users service: user activated",
		"user_id", id)

	return saved, nil
}

// Update merges patch over the stored record. A supplied password is hashed.
func (s *Users) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error) {
	user, err := s.get(ctx, id, apierrors.NewErrUserNotFound)
	if err != nil {
		return model.User{}, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.AccessToken != nil {
		user.AccessToken = *patch.AccessToken
	}
	if patch.Password != nil {
		hash, err := s.hash(*patch.Password)
		if err != nil {
			return model.User{}, err
		}
		user.Password = hash
	}

	return s.save(ctx, user)
}

// SetAccessToken caches token on the user record.
func (s *Users) SetAccessToken(ctx context.Context, id uuid.UUID, token string) (model.User, error) {
	user, err := s.get(ctx, id, apierrors.NewErrUserNotFound)
	if err != nil {
		return model.User{}, err
	}

	user.AccessToken = token

	return s.save(ctx, user)
}

// DeleteByID removes the user and returns the removed record without credentials.
func (s *Users) DeleteByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.get(ctx, id, apierrors.NewErrUserNotFound)
	if err != nil {
		return model.User{}, err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewErrUserNotFound(id)
		}
		return model.User{}, s.internal("failed to delete user", err, "user_id", id)
	}

	s.logger.Info("Users service: user deleted",
		"user_id", id)

	return user.Public(), nil
}

func (s *Users) get(ctx context.Context, id uuid.UUID, notFound func(uuid.UUID) *apierrors.APIError) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, notFound(id)
		}
		return model.User{}, s.internal("failed to get user", err, "user_id", id)
	}
	return user, nil
}

func (s *Users) save(ctx context.Context, user model.User) (model.User, error) {
	saved, err := s.store.Save(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.User{}, apierrors.NewErrUserAlreadyExists(user.Email)
		}
		return model.User{}, s.internal("failed to save user", err, "user_id", user.ID)
	}
	return saved, nil
}

func (s *Users) ensureEmailFree(ctx context.Context, email string, taken func(string) *apierrors.APIError) error {
	_, err := s.store.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Info("Users service: email already in use",
			"email", email)
		return taken(email)
	case errors.Is(err, model.ErrNotFound):
		return nil
	default:
		return s.internal("failed to get user by email", err, "email", email)
	}
}

func (s *Users) hash(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, model.ErrEmptyPassword) || errors.Is(err, model.ErrPasswordTooLong) {
			return "", apierrors.NewErrInvalidInput(err)
		}
		return "", s.internal("failed to hash password", err)
	}
	return hash, nil
}

func (s *Users) internal(msg string, err error, args ...any) error {
	s.logger.Error("Users service: "+msg, append(args, "error", err.Error())...)
	return apierrors.NewErrInternalServerError(err)
}
