package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

func (c *Client) ListSavings(ctx context.Context) ([]domain.Saving, error) {
	return doEnveloped[[]domain.Saving](ctx, c, "/savings/", RequestOptions{})
}

func (c *Client) GetSaving(ctx context.Context, id int64) (domain.Saving, error) {
	return doEnveloped[domain.Saving](ctx, c, fmt.Sprintf("/savings/%d", id), RequestOptions{})
}

func (c *Client) CreateSaving(ctx context.Context, payload SavingCreate) (domain.Saving, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Saving{}, err
	}

	return doEnveloped[domain.Saving](ctx, c, "/savings/", RequestOptions{Method: http.MethodPost, Body: payload})
}

func (c *Client) UpdateSaving(ctx context.Context, id int64, payload SavingUpdate) (domain.Saving, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Saving{}, err
	}

	return doEnveloped[domain.Saving](ctx, c, fmt.Sprintf("/savings/%d", id), RequestOptions{Method: http.MethodPut, Body: payload})
}

func (c *Client) DeleteSaving(ctx context.Context, id int64) error {
	return c.do(ctx, fmt.Sprintf("/savings/%d", id), RequestOptions{Method: http.MethodDelete}, nil)
}
