package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

// Login exchanges credentials for a bearer token. On success the token
// is attached to the client and written through to the session store
// before the response is returned.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	payload := LoginRequest{Email: email, Password: password}
	if err := c.validatePayload(payload); err != nil {
		return LoginResponse{}, err
	}

	var response LoginResponse
	err := c.do(ctx, "/auth/login", RequestOptions{Method: http.MethodPost, Body: payload}, &response)
	if err != nil {
		return LoginResponse{}, err
	}

	if err := c.SetCredential(ctx, response.AccessToken); err != nil {
		return LoginResponse{}, fmt.Errorf("persist credential after login: %w", err)
	}

	return response, nil
}

// Signup registers a new account. It does not authenticate; callers
// log in afterwards.
func (c *Client) Signup(ctx context.Context, payload SignupRequest) (domain.UserProfile, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.UserProfile{}, err
	}

	return doEnveloped[domain.UserProfile](ctx, c, "/auth/signup", RequestOptions{Method: http.MethodPost, Body: payload})
}

// CurrentUser fetches the profile the attached credential belongs to.
// Like login, this endpoint answers bare.
func (c *Client) CurrentUser(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := c.do(ctx, "/auth/me", RequestOptions{}, &profile)
	return profile, err
}
