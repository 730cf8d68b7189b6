package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/whiskersm-users/internal/model"
)

// AuthService is a mock of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) SignIn(ctx context.Context, email, password string) (model.SignInResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.SignInResult), args.Error(1)
}

func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
