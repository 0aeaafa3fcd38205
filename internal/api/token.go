package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the CLI peeks out of the bearer token for
// display. The token is decoded without signature verification; the
// server stays the authority on validity.
type TokenClaims struct {
	Subject   string    `json:"subject,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

func (t TokenClaims) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// PeekClaims decodes the token claims without verifying the signature.
func PeekClaims(token string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenClaims{}, fmt.Errorf("decode token claims: %w", err)
	}

	peeked := TokenClaims{}
	if subject, err := claims.GetSubject(); err == nil {
		peeked.Subject = subject
	}
	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		peeked.ExpiresAt = expiry.Time
	}

	return peeked, nil
}
