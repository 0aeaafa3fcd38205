// Package api is the single gateway between the CLI and the Personal
// Finance Tracker REST service. It owns request construction, bearer
// header injection, JSON (de)serialization and error normalization;
// every feature command goes through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const maxResponseBytes = 1 << 20

// RequestOptions describes one call through Do. Method defaults to
// GET; caller-supplied headers win over the defaults on conflict.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
	Query   url.Values
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	log        zerolog.Logger
	validate   *validator.Validate

	mu    sync.RWMutex
	token string
}

// NewClient builds a client bound to a session store and primes the
// in-memory credential from it, so a credential persisted by a
// previous run is attached without any explicit login.
func NewClient(baseURL string, httpClient *http.Client, sessions *session.Store, log zerolog.Logger) (*Client, error) {
	if sessions == nil {
		return nil, errors.New("session store is nil")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
		log:        log,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}

	token, err := sessions.Get(context.Background())
	switch {
	case err == nil:
		client.token = token
	case errors.Is(err, domain.ErrNoSession):
		// starts anonymous
	default:
		return nil, fmt.Errorf("prime credential from session store: %w", err)
	}

	return client, nil
}

// SetCredential updates the in-memory credential and writes through to
// the session store before returning.
func (c *Client) SetCredential(ctx context.Context, token string) error {
	if err := c.sessions.Set(ctx, token); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = strings.TrimSpace(token)
	c.mu.Unlock()

	return nil
}

// ClearCredential drops the in-memory credential and writes through to
// the session store. Safe to call when already anonymous.
func (c *Client) ClearCredential(ctx context.Context) error {
	if err := c.sessions.Clear(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()

	return nil
}

// Credential returns the token currently attached to requests, or
// empty when anonymous.
func (c *Client) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Do is the sole transport primitive. A 2xx response resolves to the
// raw parsed body with no envelope unwrapping; any other status
// becomes an *Error carrying the server detail message. A request
// already in flight keeps the credential captured at build time even
// if ClearCredential lands before the response does.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(opts.Query) > 0 {
		endpoint += "?" + opts.Query.Encode()
	}

	var reqBody io.Reader
	if opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")
	if token := c.Credential(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range opts.Headers {
		request.Header.Set(key, value)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", response.StatusCode).Msg("api response")

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, newError(response.StatusCode, body)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	return json.RawMessage(body), nil
}

// do runs Do and decodes the success payload into out when non-nil.
func (c *Client) do(ctx context.Context, path string, opts RequestOptions, out any) error {
	raw, err := c.Do(ctx, path, opts)
	if err != nil {
		return err
	}
	if out == nil || raw == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response for %s: %w", path, err)
	}

	return nil
}

// doEnveloped runs do and unwraps the server's SuccessResponse
// envelope, returning its data field. Most endpoints answer enveloped;
// the handful that answer bare (login, current user, expenses total)
// go through do directly.
func doEnveloped[T any](ctx context.Context, c *Client, path string, opts RequestOptions) (T, error) {
	var wrapped envelope[T]
	if err := c.do(ctx, path, opts, &wrapped); err != nil {
		var zero T
		return zero, err
	}

	return wrapped.Data, nil
}

func (c *Client) validatePayload(payload any) error {
	if err := c.validate.Struct(payload); err != nil {
		return fmt.Errorf("invalid request payload: %w", err)
	}

	return nil
}

func pageQuery(skip, limit int) url.Values {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))
	return query
}
