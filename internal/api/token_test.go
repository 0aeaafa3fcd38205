package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestPeekClaimsReadsSubjectAndExpiry(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedTestToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": expiry.Unix(),
	})

	claims, err := PeekClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(expiry))
}

func TestPeekClaimsRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	_, err := PeekClaims("not-a-jwt")
	require.Error(t, err)
}

func TestTokenClaimsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.True(t, TokenClaims{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
	assert.False(t, TokenClaims{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.False(t, TokenClaims{}.Expired(now), "missing expiry never reads as expired")
}
