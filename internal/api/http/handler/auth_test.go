package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/whiskersm-users/internal/apierrors"
	"github.com/dtroode/whiskersm-users/internal/model"
)

func TestAuth_SignIn(t *testing.T) {
	t.Parallel()

	app, _, svc := newTestApp(t)
	id := uuid.New()
	svc.On("SignIn", mock.Anything, "ada@x.com", "secret123").Return(model.SignInResult{
		User:        model.User{ID: id, Email: "ada@x.com", AccessToken: "tok", IsActivated: true},
		AccessToken: "tok",
	}, nil)

	status, env := doRequest(t, app, http.MethodPost, "/auth/login", `{"email":"ada@x.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)

	var out SignInResponse
	require.NoError(t, json.Unmarshal(env.ResponseData, &out))
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, "tok", out.User.AccessToken)
	assert.Equal(t, id, out.User.ID)
}

func TestAuth_SignIn_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unauthorized",
			body:       `{"email":"ada@x.com","password":"wrong"}`,
			err:        apierrors.NewErrUnauthorized(),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "705",
		},
		{
			name:       "internal",
			body:       `{"email":"ada@x.com","password":"secret123"}`,
			err:        apierrors.NewErrInternalServerError(errors.New("db")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "999",
		},
		{
			name:       "missing password",
			body:       `{"email":"ada@x.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "422",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app, _, svc := newTestApp(t)
			if tt.err != nil {
				svc.On("SignIn", mock.Anything, mock.Anything, mock.Anything).Return(model.SignInResult{}, tt.err)
			}

			status, env := doRequest(t, app, http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, env.MessageCode)
			assert.False(t, env.Success)
			assert.NotContains(t, env.Message, "db")
		})
	}
}
