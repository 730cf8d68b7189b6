package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
)

// handleError writes err as an envelope. Internal causes are not exposed.
func handleError(c *fiber.Ctx, err error) error {
	apiErr := apierrors.From(err)

	var data any
	if apiErr.Kind == apierrors.KindInternal {
		data = false
	}

	return c.Status(apiErr.HTTPStatus).JSON(Envelope{
		Success:      false,
		ResponseData: data,
		MessageCode:  apiErr.Code,
		Message:      apiErr.Message,
	})
}

// ErrorHandler answers errors that escape handlers, such as unknown routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := apierrors.CodeInternal
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = apierrors.CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = apierrors.CodeInvalidInput
		}
		return c.Status(fiberErr.Code).JSON(Envelope{
			Success:     false,
			MessageCode: code,
			Message:     fiberErr.Message,
		})
	}

	return handleError(c, err)
}

// parseID reads the :id route parameter. A malformed id cannot name a
// user, so it is reported as not found with the given code.
func parseID(c *fiber.Ctx, code string) (uuid.UUID, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &apierrors.APIError{
			Kind:       apierrors.KindNotFound,
			Code:       code,
			HTTPStatus: fiber.StatusNotFound,
			Message:    fmt.Sprintf("user %q not found", raw),
		}
	}
	return id, nil
}

func bindBody(c *fiber.Ctx, dst interface{ Validate() error }) error {
	if err := c.BodyParser(dst); err != nil {
		return apierrors.NewErrInvalidInput(fmt.Errorf("malformed request body: %w", err))
	}
	if err := dst.Validate(); err != nil {
		return apierrors.NewErrInvalidInput(err)
	}
	return nil
}
