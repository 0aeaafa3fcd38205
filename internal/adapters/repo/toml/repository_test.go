package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	return repo, home
}

func sampleSnapshot() ports.CachedProfile {
	return ports.CachedProfile{
		Profile: domain.UserProfile{
			ID:        1,
			Email:     "a@b.com",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Role:      domain.RoleUser,
			Balance:   1250.75,
			IsActive:  true,
			CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
		FetchedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLoadWithoutSnapshotReportsNotCached(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileNotCached)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	want := sampleSnapshot()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Profile, got.Profile)
	assert.True(t, want.FetchedAt.Equal(got.FetchedAt))
}

func TestSaveWritesOwnerOnlyFile(t *testing.T) {
	repo, home := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))

	info, err := os.Stat(filepath.Join(home, ".fintrack", "profile.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(snapshotFileMode), info.Mode().Perm())
}

func TestClearRemovesSnapshotAndIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))
	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfileNotCached)
}

func TestConfigOverridesSnapshotPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".fintrack")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	customPath := filepath.Join(home, "elsewhere", "snapshot.toml")
	config := "[profile]\npath = \"" + customPath + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644))

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), sampleSnapshot()))
	_, err = os.Stat(customPath)
	require.NoError(t, err)
}

func TestLoadRejectsNewerSchemaVersion(t *testing.T) {
	repo, home := newTestRepository(t)

	snapshotDir := filepath.Join(home, ".fintrack")
	require.NoError(t, os.MkdirAll(snapshotDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(snapshotDir, "profile.toml"), []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profile snapshot schema version")
}
