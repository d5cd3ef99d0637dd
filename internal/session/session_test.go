package session

import (
	"testing"

	"github.com/rovshanmuradov/tinystock/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUnauthenticated(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestLoginLogoutTransitions(t *testing.T) {
	s := New()
	user := api.User{ID: "u1", Email: "demo@tinystock.app"}

	require.NoError(t, s.Login("jwt-token", user))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "jwt-token", s.Token())
	got, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, user, got)

	s.Logout()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
	_, ok = s.User()
	assert.False(t, ok)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	s := New()
	err := s.Login("", api.User{Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrEmptyToken)

	// neither half may be set on its own
	assert.Empty(t, s.Token())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestUserIsCopied(t *testing.T) {
	s := New()
	require.NoError(t, s.Login("t", api.User{Email: "a@b.c"}))

	u, _ := s.User()
	u.Email = "changed"

	again, _ := s.User()
	assert.Equal(t, "a@b.c", again.Email)
}
