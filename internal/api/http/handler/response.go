package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
	"github.com/dtroode/whiskersm-users/internal/model"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success      bool   `json:"success"`
	ResponseData any    `json:"responseData"`
	MessageCode  string `json:"messageCode"`
	Message      string `json:"message,omitempty"`
}

// UserResponse is the wire form of a user. It never carries the password.
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	IsActivated bool      `json:"isActivated"`
	AccessToken string    `json:"accessToken,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SignInResponse is returned by the login endpoint.
type SignInResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

func newUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		IsActivated: u.IsActivated,
		AccessToken: u.AccessToken,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func newUserListResponse(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out
}

func respondOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:      true,
		ResponseData: data,
		MessageCode:  apierrors.CodeOK,
	})
}
