package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
	"github.com/dtroode/whiskersm-users/internal/logger"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// UserService defines user lifecycle operations.
type UserService interface {
	Invite(ctx context.Context, params model.InviteParams) (model.User, error)
	CreateDirect(ctx context.Context, params model.CreateParams) (model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	Activate(ctx context.Context, id uuid.UUID, params model.ActivateParams) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// User handles HTTP endpoints under /users.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Invite creates an inactive user and emails them an activation link.
func (h *User) Invite(c *fiber.Ctx) error {
	var req InviteRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, err)
	}

	h.logger.Debug("User handler: processing invite request",
		"email", req.Email)

	user, err := h.userService.Invite(c.UserContext(), req.params())
	if err != nil {
		h.logger.Error("User handler: invite failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}

// Create stores a user directly, without invitation.
func (h *User) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.userService.CreateDirect(c.UserContext(), req.params())
	if err != nil {
		h.logger.Error("User handler: create failed",
			"email", req.Email,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}

// FindAll lists users. An empty list is reported with its own message code.
func (h *User) FindAll(c *fiber.Ctx) error {
	users, err := h.userService.FindAll(c.UserContext())
	if err != nil {
		h.logger.Error("User handler: list failed",
			"error", err.Error())
		return handleError(c, err)
	}

	if len(users) == 0 {
		return c.Status(fiber.StatusOK).JSON(Envelope{
			Success:      false,
			ResponseData: []UserResponse{},
			MessageCode:  apierrors.CodeNoUsers,
		})
	}

	return respondOK(c, newUserListResponse(users))
}

func (h *User) FindByID(c *fiber.Ctx) error {
	id, err := parseID(c, apierrors.CodeNotFound)
	if err != nil {
		return handleError(c, err)
	}

	user, err := h.userService.FindByID(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}

func (h *User) FindByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	user, err := h.userService.FindByEmail(c.UserContext(), email)
	if err != nil {
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}

// Activate completes registration of an invited user.
func (h *User) Activate(c *fiber.Ctx) error {
	id, err := parseID(c, apierrors.CodeActivationNotFound)
	if err != nil {
		return handleError(c, err)
	}

	var req ActivateRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, err)
	}

	h.logger.Debug("User handler: processing activation request",
		"user_id", id)

	user, err := h.userService.Activate(c.UserContext(), id, req.params())
	if err != nil {
		h.logger.Error("User handler: activation failed",
			"user_id", id,
			"error", err.Error())
		return handleError(c, err)
	}

	h.logger.Info("User handler: user activated",
		"user_id", id)

	return respondOK(c, newUserResponse(user))
}

func (h *User) Update(c *fiber.Ctx) error {
	id, err := parseID(c, apierrors.CodeNotFound)
	if err != nil {
		return handleError(c, err)
	}

	var req UpdateRequest
	if err := bindBody(c, &req); err != nil {
		return handleError(c, err)
	}

	user, err := h.userService.Update(c.UserContext(), id, req.patch())
	if err != nil {
		h.logger.Error("User handler: update failed",
			"user_id", id,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}

func (h *User) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, apierrors.CodeNotFound)
	if err != nil {
		return handleError(c, err)
	}

	user, err := h.userService.DeleteByID(c.UserContext(), id)
	if err != nil {
		h.logger.Error("User handler: delete failed",
			"user_id", id,
			"error", err.Error())
		return handleError(c, err)
	}

	return respondOK(c, newUserResponse(user))
}
