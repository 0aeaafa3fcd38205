package toml

import (
	"fmt"
	"time"

	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Profile *profileSchema `toml:"profile,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile snapshot schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type profileSchema struct {
	ID            int64   `toml:"id"`
	Email         string  `toml:"email"`
	FirstName     string  `toml:"first_name"`
	LastName      string  `toml:"last_name"`
	PhoneNumber   string  `toml:"phone_number,omitempty"`
	Role          string  `toml:"role"`
	Balance       float64 `toml:"balance"`
	IsActive      bool    `toml:"is_active"`
	IsVerified    bool    `toml:"is_verified"`
	ProfileImgURL string  `toml:"profile_img_url,omitempty"`
	CreatedAt     string  `toml:"created_at,omitempty"`
	FetchedAt     string  `toml:"fetched_at"`
}

func toSchema(cached ports.CachedProfile) *profileSchema {
	return &profileSchema{
		ID:            cached.Profile.ID,
		Email:         cached.Profile.Email,
		FirstName:     cached.Profile.FirstName,
		LastName:      cached.Profile.LastName,
		PhoneNumber:   cached.Profile.PhoneNumber,
		Role:          string(cached.Profile.Role),
		Balance:       cached.Profile.Balance,
		IsActive:      cached.Profile.IsActive,
		IsVerified:    cached.Profile.IsVerified,
		ProfileImgURL: cached.Profile.ProfileImgURL,
		CreatedAt:     formatTime(cached.Profile.CreatedAt),
		FetchedAt:     formatTime(cached.FetchedAt),
	}
}

func fromSchema(schema profileSchema) ports.CachedProfile {
	return ports.CachedProfile{
		Profile: domain.UserProfile{
			ID:            schema.ID,
			Email:         schema.Email,
			FirstName:     schema.FirstName,
			LastName:      schema.LastName,
			PhoneNumber:   schema.PhoneNumber,
			Role:          domain.Role(schema.Role),
			Balance:       schema.Balance,
			IsActive:      schema.IsActive,
			IsVerified:    schema.IsVerified,
			ProfileImgURL: schema.ProfileImgURL,
			CreatedAt:     parseTime(schema.CreatedAt),
		},
		FetchedAt: parseTime(schema.FetchedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
