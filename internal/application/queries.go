package application

import (
	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/edenis00/fintrack-cli/internal/domain"
	"github.com/edenis00/fintrack-cli/internal/ports"
)

// Session is the in-memory authentication state. It is derived, never
// persisted: each run reconstructs it from the stored credential.
// Authenticated is true exactly when the session store holds a
// credential the gate has not discarded.
type Session struct {
	Authenticated bool                `json:"authenticated"`
	User          *domain.UserProfile `json:"user,omitempty"`
}

func anonymousSession() Session {
	return Session{}
}

func authenticatedSession(profile domain.UserProfile) Session {
	return Session{Authenticated: true, User: &profile}
}

// Status is what `fintrack status` renders: the verified session plus
// whatever the token itself says about expiry.
type Status struct {
	Session Session          `json:"session"`
	Claims  *api.TokenClaims `json:"claims,omitempty"`
}

// CachedStatus is the offline view: the last server-verified snapshot,
// served without a network round trip.
type CachedStatus struct {
	Cached ports.CachedProfile `json:"cached"`
}
