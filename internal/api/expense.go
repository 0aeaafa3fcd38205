package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

func (c *Client) ListExpenses(ctx context.Context, skip, limit int) ([]domain.Expense, error) {
	return doEnveloped[[]domain.Expense](ctx, c, "/expenses/", RequestOptions{Query: pageQuery(skip, limit)})
}

func (c *Client) GetExpense(ctx context.Context, id int64) (domain.Expense, error) {
	return doEnveloped[domain.Expense](ctx, c, fmt.Sprintf("/expenses/%d", id), RequestOptions{})
}

func (c *Client) CreateExpense(ctx context.Context, payload ExpenseCreate) (domain.Expense, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Expense{}, err
	}

	return doEnveloped[domain.Expense](ctx, c, "/expenses/", RequestOptions{Method: http.MethodPost, Body: payload})
}

func (c *Client) UpdateExpense(ctx context.Context, id int64, payload ExpenseUpdate) (domain.Expense, error) {
	if err := c.validatePayload(payload); err != nil {
		return domain.Expense{}, err
	}

	return doEnveloped[domain.Expense](ctx, c, fmt.Sprintf("/expenses/%d", id), RequestOptions{Method: http.MethodPut, Body: payload})
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, fmt.Sprintf("/expenses/%d", id), RequestOptions{Method: http.MethodDelete}, nil)
}

// TotalExpenses is one of the few endpoints that answers bare, without
// the success envelope.
func (c *Client) TotalExpenses(ctx context.Context) (TotalExpenses, error) {
	var total TotalExpenses
	err := c.do(ctx, "/expenses/total", RequestOptions{}, &total)
	return total, err
}

func (c *Client) ExpensesByCategory(ctx context.Context, category string) ([]domain.Expense, error) {
	path := "/expenses/category/" + url.PathEscape(category)
	return doEnveloped[[]domain.Expense](ctx, c, path, RequestOptions{})
}
