package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/whiskersm-users/internal/model"
)

// UserService is a mock of handler.UserService.
type UserService struct {
	mock.Mock
}

func (m *UserService) Invite(ctx context.Context, params model.InviteParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) CreateDirect(ctx context.Context, params model.CreateParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserService) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Activate(ctx context.Context, id uuid.UUID, params model.ActivateParams) (model.User, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) (model.User, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserService) DeleteByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
