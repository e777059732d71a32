package authn

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func TestAccessToken(t *testing.T) {
	issuer := AccessTokenIssuer{Secret: "test-secret", Issuer: "jewel-ledger", TTL: time.Hour}
	now := time.Now()

	token, expiresAt, err := issuer.Sign("user-1", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	userID, err := ParseAccessToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = ParseAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	issuer := AccessTokenIssuer{Secret: "test-secret", TTL: time.Minute}
	token, _, err := issuer.Sign("user-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "test-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAccessTokenWithoutSubject(t *testing.T) {
	issuer := AccessTokenIssuer{Secret: "test-secret", TTL: time.Minute}
	token, _, err := issuer.Sign("", time.Now())
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "test-secret")
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestRefreshToken(t *testing.T) {
	token, err := NewRefreshToken()
	require.NoError(t, err)
	assert.Len(t, token, 2*refreshTokenBytes)

	other, err := NewRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	hash := HashRefreshToken(token)
	assert.True(t, RefreshTokenMatches(token, hash))
	assert.False(t, RefreshTokenMatches(other, hash))
}
