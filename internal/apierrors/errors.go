// Package apierrors defines the failure kinds surfaced by services and the
// message codes the API reports for them.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Kind classifies a failure.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindAlreadyInvited
	KindAlreadyActivated
	KindUnauthorized
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindAlreadyInvited:
		return "already_invited"
	case KindAlreadyActivated:
		return "already_activated"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "internal"
	}
}

// Message codes reported to API clients.
const (
	CodeOK                 = "700"
	CodeAlreadyActivated   = "701"
	CodeActivationNotFound = "702"
	CodeNotFound           = "703"
	CodeAlreadyExists      = "704"
	CodeUnauthorized       = "705"
	CodeNoUsers            = "709"
	CodeAlreadyInvited     = "711"
	CodeInvalidInput       = "422"
	CodeInternal           = "999"
)

// APIError is a classified failure. Message is safe to show to clients;
// Err keeps the cause for logs.
type APIError struct {
	Kind       Kind
	Code       string
	HTTPStatus int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrNotFound         = &APIError{Kind: KindNotFound}
	ErrAlreadyExists    = &APIError{Kind: KindAlreadyExists}
	ErrAlreadyInvited   = &APIError{Kind: KindAlreadyInvited}
	ErrAlreadyActivated = &APIError{Kind: KindAlreadyActivated}
	ErrUnauthorized     = &APIError{Kind: KindUnauthorized}
	ErrInvalidInput     = &APIError{Kind: KindInvalidInput}
	ErrInternal         = &APIError{Kind: KindInternal}
)

func NewErrUserNotFound(id uuid.UUID) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Code:       CodeNotFound,
		HTTPStatus: http.StatusNotFound,
		Message:    fmt.Sprintf("user %s not found", id),
	}
}

func NewErrUserEmailNotFound(email string) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Code:       CodeNotFound,
		HTTPStatus: http.StatusNotFound,
		Message:    fmt.Sprintf("user with email %q not found", email),
	}
}

// NewErrActivationUserNotFound reports a missing activation target. It is a
// NotFound kind with its own message code.
func NewErrActivationUserNotFound(id uuid.UUID) *APIError {
	return &APIError{
		Kind:       KindNotFound,
		Code:       CodeActivationNotFound,
		HTTPStatus: http.StatusNotFound,
		Message:    fmt.Sprintf("user %s not found for activation", id),
	}
}

func NewErrUserAlreadyExists(email string) *APIError {
	return &APIError{
		Kind:       KindAlreadyExists,
		Code:       CodeAlreadyExists,
		HTTPStatus: http.StatusConflict,
		Message:    fmt.Sprintf("user with email %q already exists", email),
	}
}

func NewErrUserAlreadyInvited(email string) *APIError {
	return &APIError{
		Kind:       KindAlreadyInvited,
		Code:       CodeAlreadyInvited,
		HTTPStatus: http.StatusConflict,
		Message:    fmt.Sprintf("user with email %q already invited", email),
	}
}

func NewErrUserAlreadyActivated(id uuid.UUID) *APIError {
	return &APIError{
		Kind:       KindAlreadyActivated,
		Code:       CodeAlreadyActivated,
		HTTPStatus: http.StatusConflict,
		Message:    fmt.Sprintf("user %s already activated", id),
	}
}

// NewErrUnauthorized does not say whether the email or the password was wrong.
func NewErrUnauthorized() *APIError {
	return &APIError{
		Kind:       KindUnauthorized,
		Code:       CodeUnauthorized,
		HTTPStatus: http.StatusUnauthorized,
		Message:    "invalid email or password",
	}
}

func NewErrInvalidInput(err error) *APIError {
	msg := "invalid input"
	if err != nil {
		msg = err.Error()
	}
	return &APIError{
		Kind:       KindInvalidInput,
		Code:       CodeInvalidInput,
		HTTPStatus: http.StatusBadRequest,
		Message:    msg,
		Err:        err,
	}
}

func NewErrInternalServerError(err error) *APIError {
	return &APIError{
		Kind:       KindInternal,
		Code:       CodeInternal,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "internal server error",
		Err:        err,
	}
}

// From returns err as an APIError, classifying unknown errors as internal.
func From(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrInternalServerError(err)
}

// KindOf returns the kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}
