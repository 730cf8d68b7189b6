package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/whiskersm-users/internal/model"
)

func TestNewBcrypt_CostBounds(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "valid cost kept", in: 12, want: 12},
		{name: "too low falls back", in: 1, want: bcrypt.DefaultCost},
		{name: "too high falls back", in: 99, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcrypt(tt.in).cost)
		})
	}
}

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	ok, err := h.Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_HashIsSalted(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_HashErrors(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash("")
	assert.ErrorIs(t, err, model.ErrEmptyPassword)

	_, err = h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, model.ErrPasswordTooLong)
}

func TestBcrypt_VerifyMalformedHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	ok, err := h.Verify("secret123", "not-a-hash")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compare password hash")
}
