package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/whiskersm-users/internal/model"
)

// UserAccounts is a mock of service.UserAccounts.
type UserAccounts struct {
	mock.Mock
}

func (m *UserAccounts) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserAccounts) SetAccessToken(ctx context.Context, id uuid.UUID, token string) (model.User, error) {
	args := m.Called(ctx, id, token)
	return args.Get(0).(model.User), args.Error(1)
}

func NewUserAccounts(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserAccounts {
	m := &UserAccounts{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
