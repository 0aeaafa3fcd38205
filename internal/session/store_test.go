package session

import (
	"context"
	"testing"

	filestore "github.com/edenis00/fintrack-cli/internal/adapters/secrets/file"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filestore.NewStore(t.TempDir()))
}

func TestSetThenGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "tok123"))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok123", got)
}

func TestGetWithoutSessionReportsNoSession(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestClearRemovesSession(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "tok123"))
	require.NoError(t, store.Clear(context.Background()))

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestClearWithoutSessionIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))
}

func TestSetOverwritesPreviousToken(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, store.Set(context.Background(), "tok-old"))
	require.NoError(t, store.Set(context.Background(), "tok456"))

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok456", got)
}

func TestSetRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.Error(t, store.Set(context.Background(), "   "))
}
