package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	filestore "github.com/edenis00/fintrack-cli/internal/adapters/secrets/file"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) (*Client, *session.Store) {
	t.Helper()

	sessions := session.NewStore(filestore.NewStore(t.TempDir()))
	client, err := NewClient(baseURL, http.DefaultClient, sessions, zerolog.Nop())
	require.NoError(t, err)
	return client, sessions
}

func TestDoAttachesBearerHeaderWhenCredentialHeld(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	require.NoError(t, client.SetCredential(context.Background(), "tok123"))

	_, err := client.Do(context.Background(), "/auth/me", RequestOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestDoOmitsBearerHeaderWhenAnonymous(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Do(context.Background(), "/auth/login", RequestOptions{})
	require.NoError(t, err)
	assert.False(t, hasAuth, "unexpected Authorization header %q", gotAuth)
}

func TestDoCallerHeadersWinOnConflict(t *testing.T) {
	t.Parallel()

	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Do(context.Background(), "/", RequestOptions{
		Headers: map[string]string{"Content-Type": "application/json; charset=utf-8"},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", gotContentType)
}

func TestDoReturnsBodyUnmodifiedOnSuccess(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"foo": "bar"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	raw, err := client.Do(context.Background(), "/anything", RequestOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo": "bar"}`, string(raw))
}

func TestDoNormalizesServerDetailIntoErrorMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Invalid amount"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Do(context.Background(), "/expenses/", RequestOptions{Method: http.MethodPost})
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid amount")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestDoFallsBackToGenericMessageWithoutDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Do(context.Background(), "/", RequestOptions{})
	require.Error(t, err)
	assert.EqualError(t, err, fallbackMessage)
}

func TestDoTransportFailurePropagates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Do(context.Background(), "/", RequestOptions{})
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport failure must not look like a server rejection")
}

func TestSetCredentialWritesThroughToSessionStore(t *testing.T) {
	t.Parallel()

	client, sessions := newTestClient(t, "http://unused.invalid")

	require.NoError(t, client.SetCredential(context.Background(), "tok123"))

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123", stored)
	assert.Equal(t, "tok123", client.Credential())
}

func TestClearCredentialWritesThroughToSessionStore(t *testing.T) {
	t.Parallel()

	client, sessions := newTestClient(t, "http://unused.invalid")

	require.NoError(t, client.SetCredential(context.Background(), "tok123"))
	require.NoError(t, client.ClearCredential(context.Background()))

	_, err := sessions.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Empty(t, client.Credential())
}

func TestNewClientPrimesCredentialFromStore(t *testing.T) {
	t.Parallel()

	sessions := session.NewStore(filestore.NewStore(t.TempDir()))
	require.NoError(t, sessions.Set(context.Background(), "tok-persisted"))

	client, err := NewClient("http://unused.invalid", http.DefaultClient, sessions, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tok-persisted", client.Credential())
}

func TestLoginStoresTokenAndReturnsResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "a@b.com", payload["email"])
		require.Equal(t, "password", payload["password"])

		_, _ = w.Write([]byte(`{"access_token": "tok123", "token_type": "bearer", "user": {"id": 1, "email": "a@b.com", "role": "user"}}`))
	}))
	defer server.Close()

	client, sessions := newTestClient(t, server.URL)

	response, err := client.Login(context.Background(), "a@b.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "tok123", response.AccessToken)
	assert.Equal(t, int64(1), response.User.ID)
	assert.Equal(t, domain.RoleUser, response.User.Role)

	stored, err := sessions.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123", stored)
}

func TestLoginRejectsMalformedEmailBeforeNetworkCall(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	_, err := client.Login(context.Background(), "not-an-email", "password")
	require.Error(t, err)
	assert.False(t, called)
}

func TestListIncomesSendsPaginationQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/incomes/", r.URL.Path)
		require.Equal(t, "10", r.URL.Query().Get("skip"))
		require.Equal(t, "25", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": [{"id": 7, "amount": 1200.5, "source": "salary"}]}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	incomes, err := client.ListIncomes(context.Background(), 10, 25)
	require.NoError(t, err)
	require.Len(t, incomes, 1)
	assert.Equal(t, int64(7), incomes[0].ID)
	assert.InDelta(t, 1200.5, incomes[0].Amount, 0.0001)
}

func TestGetProfileUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": {"id": 1, "email": "a@b.com", "first_name": "Ada", "role": "user"}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "Ada", profile.FirstName)
}

func TestCreateExpenseUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"success": true, "message": "created", "data": {"id": 5, "amount": 12.5, "category": "misc", "description": "x"}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	expense, err := client.CreateExpense(context.Background(), ExpenseCreate{Amount: 12.5, Category: "misc", Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), expense.ID)
	assert.InDelta(t, 12.5, expense.Amount, 0.0001)
}

func TestTotalExpensesDecodesBarePayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/expenses/total", r.URL.Path)
		_, _ = w.Write([]byte(`{"user_id": 1, "total_expenses": 321.5}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	total, err := client.TotalExpenses(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 321.5, total.TotalExpenses, 0.0001)
}

func TestExpensesByCategoryUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/expenses/category/groceries", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": [{"id": 3, "amount": 42, "category": "groceries"}]}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	expenses, err := client.ExpensesByCategory(context.Background(), "groceries")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "groceries", expenses[0].Category)
}

func TestAdminDashboardUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": {"total_users": 4, "total_expenses": 10, "total_income": 6, "total_savings": 2}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	stats, err := client.AdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalSavings)
}

func TestSavingsSummaryForwardsUserFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "9", r.URL.Query().Get("user_id"))
		_, _ = w.Write([]byte(`{"success": true, "message": "ok", "data": {"total_savings": 3, "total_amount": 900}}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)

	userID := int64(9)
	summary, err := client.SavingsSummary(context.Background(), &userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalSavings)
	assert.InDelta(t, 900, summary.TotalAmount, 0.0001)
}

func TestCreateExpenseRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, "http://unused.invalid")

	_, err := client.CreateExpense(context.Background(), ExpenseCreate{Amount: 0, Category: "misc", Description: "x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid request payload")
}
