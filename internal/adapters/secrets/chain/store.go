package chain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	filestore "github.com/edenis00/fintrack-cli/internal/adapters/secrets/file"
	passstore "github.com/edenis00/fintrack-cli/internal/adapters/secrets/pass"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
)

// Store prefers the primary backend and falls back to the secondary
// when the primary fails. A token written before `pass` was installed
// still resolves through the file fallback.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewDefault wires pass-first with a file fallback rooted under the
// user's fintrack directory.
func NewDefault() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	return NewStore(passstore.NewStore(), filestore.NewStore(filepath.Join(homeDir, ".fintrack", "secrets")))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, value)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}
	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the key from both backends so a cleared credential
// cannot resurface through the fallback.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case err != nil && !errors.Is(err, passstore.ErrUnavailable):
		return fmt.Errorf("primary backend delete failed: %w", err)
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
