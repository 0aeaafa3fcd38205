package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

func (c *Client) AdminDashboard(ctx context.Context) (DashboardStats, error) {
	return doEnveloped[DashboardStats](ctx, c, "/admin/dashboard", RequestOptions{})
}

func (c *Client) ListUsers(ctx context.Context, skip, limit int) ([]domain.UserProfile, error) {
	return doEnveloped[[]domain.UserProfile](ctx, c, "/admin/users", RequestOptions{Query: pageQuery(skip, limit)})
}

func (c *Client) GetUser(ctx context.Context, id int64) (domain.UserProfile, error) {
	return doEnveloped[domain.UserProfile](ctx, c, fmt.Sprintf("/admin/users/%d", id), RequestOptions{})
}

func (c *Client) UpdateUser(ctx context.Context, id int64, update AdminUserUpdate) (domain.UserProfile, error) {
	return doEnveloped[domain.UserProfile](ctx, c, fmt.Sprintf("/admin/users/%d", id), RequestOptions{Method: http.MethodPut, Body: update})
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, fmt.Sprintf("/admin/users/%d", id), RequestOptions{Method: http.MethodDelete}, nil)
}

// SetUserActivation activates or deactivates an account.
func (c *Client) SetUserActivation(ctx context.Context, id int64, activate bool) error {
	body := map[string]bool{"activate": activate}
	_, err := doEnveloped[domain.UserProfile](ctx, c, fmt.Sprintf("/admin/users/%d", id), RequestOptions{Method: http.MethodPost, Body: body})
	return err
}

func (c *Client) SavingsSummary(ctx context.Context, userID *int64) (SavingsSummary, error) {
	return doEnveloped[SavingsSummary](ctx, c, "/admin/savings-summary", RequestOptions{Query: userFilter(userID)})
}

func (c *Client) IncomeSummary(ctx context.Context, userID *int64) (IncomeSummary, error) {
	return doEnveloped[IncomeSummary](ctx, c, "/admin/income-summary", RequestOptions{Query: userFilter(userID)})
}

func (c *Client) ExpensesSummary(ctx context.Context, userID *int64) (ExpensesSummary, error) {
	return doEnveloped[ExpensesSummary](ctx, c, "/admin/expenses-summary", RequestOptions{Query: userFilter(userID)})
}

func userFilter(userID *int64) url.Values {
	if userID == nil {
		return nil
	}

	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(*userID, 10))
	return query
}
