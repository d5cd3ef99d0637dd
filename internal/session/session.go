// Package session holds the authentication state of the running dashboard.
package session

import (
	"errors"

	"github.com/rovshanmuradov/tinystock/internal/api"
)

// ErrEmptyToken is returned when a login transition is attempted without a token.
var ErrEmptyToken = errors.New("session: empty token")

// Session is the single piece of shared client state. Token and user are
// either both set or both cleared. It is created empty at start-up, written
// only by Login and Logout, and never persisted.
type Session struct {
	token string
	user  *api.User
}

// New returns an unauthenticated session.
func New() *Session {
	return &Session{}
}

// Login moves the session to the authenticated state.
func (s *Session) Login(token string, user api.User) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.token = token
	s.user = &user
	return nil
}

// Logout clears token and user together. The backend is not contacted.
func (s *Session) Logout() {
	s.token = ""
	s.user = nil
}

// Authenticated reports whether a token and user are held.
func (s *Session) Authenticated() bool {
	return s.token != "" && s.user != nil
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	return s.token
}

// User returns a copy of the profile and whether one is held.
func (s *Session) User() (api.User, bool) {
	if s.user == nil {
		return api.User{}, false
	}
	return *s.user, true
}
