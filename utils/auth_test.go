package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	now := time.Now()

	token, err := issuer.GenerateSessionToken("abc", now, now.Add(time.Hour))
	require.NoError(t, err)

	claims, err := issuer.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.SessionID)
	assert.Equal(t, now.Add(time.Hour).Unix(), claims.ExpiresAt)
}

func TestParseSessionTokenRejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	now := time.Now()

	expired, err := issuer.GenerateSessionToken("abc", now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	foreign, err := NewTokenIssuer("other-secret").GenerateSessionToken("abc", now, now.Add(time.Hour))
	require.NoError(t, err)

	noSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix()},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":    expired,
		"wrong key":  foreign,
		"no session": noSession,
		"garbage":    "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.ParseSessionToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
