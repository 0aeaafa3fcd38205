// Package application holds the auth gate: the once-per-run decision
// whether the user is authenticated, kept in lockstep with the session
// store and the API client.
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
	"github.com/edenis00/fintrack-cli/internal/session"
	"github.com/rs/zerolog"
)

type Service struct {
	client   *api.Client
	sessions *session.Store
	profiles ports.ProfileCache
	clock    ports.Clock
	log      zerolog.Logger
}

func NewService(client *api.Client, sessions *session.Store, profiles ports.ProfileCache, clock ports.Clock, log zerolog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		client:   client,
		sessions: sessions,
		profiles: profiles,
		clock:    clock,
		log:      log,
	}
}

// Bootstrap decides the session state for this run. No stored
// credential means anonymous without any network call. A stored
// credential is verified against the server; any failure downgrades to
// anonymous and discards the credential, so the user is never left
// authenticated-but-unverified.
func (s *Service) Bootstrap(ctx context.Context) (Session, error) {
	_, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return anonymousSession(), nil
		}
		return anonymousSession(), fmt.Errorf("read stored session: %w", err)
	}

	profile, err := s.client.CurrentUser(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("session verification failed, discarding credential")
		if clearErr := s.discardSession(ctx); clearErr != nil {
			return anonymousSession(), fmt.Errorf("discard rejected session: %w", clearErr)
		}
		return anonymousSession(), nil
	}

	s.cacheProfile(ctx, profile)

	return authenticatedSession(profile), nil
}

// Login exchanges credentials for a session. The API client persists
// the token; the gate records the returned profile.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	response, err := s.client.Login(ctx, email, password)
	if err != nil {
		return anonymousSession(), err
	}

	s.cacheProfile(ctx, response.User)

	return authenticatedSession(response.User), nil
}

// Signup registers an account without authenticating it.
func (s *Service) Signup(ctx context.Context, payload api.SignupRequest) (domain.UserProfile, error) {
	return s.client.Signup(ctx, payload)
}

// Logout discards the credential and the cached snapshot. Idempotent
// with the fail-closed path of Bootstrap.
func (s *Service) Logout(ctx context.Context) error {
	return s.discardSession(ctx)
}

// Status verifies the session and pairs it with the token's own
// expiry claims for display.
func (s *Service) Status(ctx context.Context) (Status, error) {
	token, err := s.sessions.Get(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoSession) {
		return Status{}, fmt.Errorf("read stored session: %w", err)
	}

	sess, err := s.Bootstrap(ctx)
	if err != nil {
		return Status{}, err
	}

	status := Status{Session: sess}
	if sess.Authenticated && token != "" {
		if claims, claimsErr := api.PeekClaims(token); claimsErr == nil {
			status.Claims = &claims
		}
	}

	return status, nil
}

// CachedStatus serves the last verified snapshot without a network
// call. domain.ErrProfileNotCached when nothing was ever verified.
func (s *Service) CachedStatus(ctx context.Context) (CachedStatus, error) {
	cached, err := s.profiles.Load(ctx)
	if err != nil {
		return CachedStatus{}, err
	}

	return CachedStatus{Cached: cached}, nil
}

func (s *Service) discardSession(ctx context.Context) error {
	var errs []error

	if err := s.client.ClearCredential(ctx); err != nil {
		errs = append(errs, err)
	}
	// The client already writes through; clearing the store again keeps
	// the two explicit steps of the logout protocol independent.
	if err := s.sessions.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.profiles.Clear(ctx); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *Service) cacheProfile(ctx context.Context, profile domain.UserProfile) {
	err := s.profiles.Save(ctx, ports.CachedProfile{Profile: profile, FetchedAt: s.clock.Now()})
	if err != nil {
		// Snapshot is a convenience; a failed save must not break login.
		s.log.Warn().Err(err).Msg("save profile snapshot")
	}
}
