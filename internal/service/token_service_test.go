package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/whiskersm-users/internal/mocks"
	"github.com/dtroode/whiskersm-users/internal/model"
	"github.com/dtroode/whiskersm-users/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "ada@x.com"}

	manager := &servermocks.TokenManager{}
	store := &servermocks.UserAccounts{}

	manager.On("GenerateAccessToken", user.ID, user.Email).Return("access", nil).Once()
	store.On("SetAccessToken", ctx, user.ID, "access").Return(model.User{}, nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	token, err := svc.Issue(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "access", token)
	manager.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestTokenService_Issue_Cached(t *testing.T) {
	manager := &servermocks.TokenManager{}
	store := &servermocks.UserAccounts{}

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	token, err := svc.Issue(context.Background(), model.User{ID: uuid.New(), AccessToken: "cached"})
	require.NoError(t, err)
	assert.Equal(t, "cached", token)
	manager.AssertNotCalled(t, "GenerateAccessToken")
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	user := model.User{ID: uuid.New(), Email: "ada@x.com"}

	manager := &servermocks.TokenManager{}
	store := &servermocks.UserAccounts{}
	manager.On("GenerateAccessToken", user.ID, user.Email).Return("", errors.New("boom"))

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, err := svc.Issue(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue access")
}

func TestTokenService_Issue_StoreError(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "ada@x.com"}

	manager := &servermocks.TokenManager{}
	store := &servermocks.UserAccounts{}
	manager.On("GenerateAccessToken", user.ID, user.Email).Return("access", nil)
	store.On("SetAccessToken", ctx, user.ID, "access").Return(model.User{}, errors.New("db"))

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, err := svc.Issue(ctx, user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist access")
}
