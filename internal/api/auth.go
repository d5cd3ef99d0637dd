package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and profile. It reports false for
// any non-200 status, a payload without a token, or a transport failure; no
// reason is preserved.
func (c *Client) Login(ctx context.Context, email, password string) (Auth, bool) {
	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   credentials{Email: email, Password: password},
	})
	if err != nil || env.status != http.StatusOK {
		return Auth{}, false
	}

	obj, ok := env.object()
	if !ok {
		return Auth{}, false
	}
	if _, ok := field(obj, "token"); !ok {
		return Auth{}, false
	}

	var auth Auth
	if err := decode(obj, &auth); err != nil || auth.Token == "" {
		return Auth{}, false
	}
	return auth, true
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password string) Outcome {
	return c.mutate(ctx, request{
		method: http.MethodPost,
		path:   "/api/auth/register",
		body:   credentials{Email: email, Password: password},
	}, http.StatusCreated, "Registration successful")
}
