package api

import (
	"context"
	"net/http"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

func (c *Client) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	return doEnveloped[domain.UserProfile](ctx, c, "/users/", RequestOptions{})
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (domain.UserProfile, error) {
	if err := c.validatePayload(update); err != nil {
		return domain.UserProfile{}, err
	}

	return doEnveloped[domain.UserProfile](ctx, c, "/users/", RequestOptions{Method: http.MethodPut, Body: update})
}
