package ports

import "context"

// SecretStore is durable string storage for credentials. Backends map a
// missing key to domain.ErrSecretNotFound so callers can tell absence
// from failure.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
