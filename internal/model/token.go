package model

import "github.com/google/uuid"

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	ParseAccessToken(token string) (userID uuid.UUID, email string, err error)
}
