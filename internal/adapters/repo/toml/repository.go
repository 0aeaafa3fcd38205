// Package toml persists the last server-verified profile snapshot as a
// toml file, so the CLI can name the account without a round trip. The
// file location is resolved through an optional viper config.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	profilePathKey    = "profile.path"
	snapshotFileMode  = 0o600
	snapshotDirMode   = 0o700
	fintrackConfigDir = ".fintrack"
	snapshotFileName  = "profile.toml"
	tempFilePattern   = ".profile-*.toml.tmp"
)

type Repository struct {
	snapshotPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileCache = (*Repository)(nil)

// NewRepository resolves the snapshot path from an optional
// ~/.fintrack/config.toml (key profile.path), defaulting next to it.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, fintrackConfigDir, snapshotFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, fintrackConfigDir))
	cfg.SetDefault(profilePathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	snapshotPath := cfg.GetString(profilePathKey)
	if snapshotPath == "" {
		return nil, errors.New("profile snapshot path is empty")
	}
	snapshotPath, err = normalizePath(snapshotPath)
	if err != nil {
		return nil, err
	}

	return &Repository{snapshotPath: snapshotPath, mu: lockForPath(snapshotPath)}, nil
}

func (r *Repository) Load(ctx context.Context) (ports.CachedProfile, error) {
	if err := ctx.Err(); err != nil {
		return ports.CachedProfile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return ports.CachedProfile{}, err
	}

	if file.Profile == nil {
		return ports.CachedProfile{}, domain.ErrProfileNotCached
	}

	return fromSchema(*file.Profile), nil
}

func (r *Repository) Save(ctx context.Context, cached ports.CachedProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{Version: currentSchemaVersion, Profile: toSchema(cached)}
	return r.writeSchema(file)
}

func (r *Repository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.snapshotPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove profile snapshot: %w", err)
	}

	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read profile snapshot: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profile snapshot: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

// writeSchema replaces the snapshot atomically via a temp file rename
// so a crash never leaves a half-written snapshot behind.
func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.snapshotPath), snapshotDirMode); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.snapshotPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp snapshot file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp snapshot file: %w", err)
	}

	if err := tempFile.Chmod(snapshotFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp snapshot file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp snapshot file: %w", err)
	}

	if err := os.Rename(tempName, r.snapshotPath); err != nil {
		return fmt.Errorf("replace profile snapshot: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.snapshotPath, snapshotFileMode); err != nil {
		return fmt.Errorf("chmod profile snapshot: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve profile snapshot path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
