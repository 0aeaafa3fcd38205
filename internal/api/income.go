package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

func (c *Client) ListIncomes(ctx context.Context, skip, limit int) ([]domain.Income, error) {
	return doEnveloped[[]domain.Income](ctx, c, "/incomes/", RequestOptions{Query: pageQuery(skip, limit)})
}

func (c *Client) GetIncome(ctx context.Context, id int64) (domain.Income, error) {
	return doEnveloped[domain.Income](ctx, c, fmt.Sprintf("/incomes/%d", id), RequestOptions{})
}

func (c *Client) CreateIncome(ctx context.Context, payload IncomeCreate) (domain.Income, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Income{}, err
	}

	return doEnveloped[domain.Income](ctx, c, "/incomes/", RequestOptions{Method: http.MethodPost, Body: payload})
}

func (c *Client) UpdateIncome(ctx context.Context, id int64, payload IncomeUpdate) (domain.Income, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Income{}, err
	}

	return doEnveloped[domain.Income](ctx, c, fmt.Sprintf("/incomes/%d", id), RequestOptions{Method: http.MethodPut, Body: payload})
}

func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.do(ctx, fmt.Sprintf("/incomes/%d", id), RequestOptions{Method: http.MethodDelete}, nil)
}
