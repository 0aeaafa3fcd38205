// Package session persists the single bearer credential the client
// holds at a time. Values live in a secret-store backend under one
// fixed key; absence is reported as domain.ErrNoSession.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
)

const tokenKey = "fintrack/session/token"

type Store struct {
	secrets ports.SecretStore
}

func NewStore(secrets ports.SecretStore) *Store {
	return &Store{secrets: secrets}
}

// Get returns the stored credential without validating it.
func (s *Store) Get(ctx context.Context) (string, error) {
	value, err := s.secrets.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", domain.ErrNoSession
		}
		return "", fmt.Errorf("load session token: %w", err)
	}

	token := strings.TrimSpace(value)
	if token == "" {
		return "", domain.ErrNoSession
	}

	return token, nil
}

func (s *Store) Set(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("session token is empty")
	}

	if err := s.secrets.Put(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	return nil
}

// Clear is idempotent; clearing an absent session succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.secrets.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}

	return nil
}
