package jwt

import (
	"testing"
	"time"

	"domainfolio/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "alice", "alice@example.com", "secret", 24)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	token, err := GenerateAccessToken(7, "alice", "alice@example.com", "secret", 24)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Equal(t, domain.CodeForbidden, domain.ErrorCode(err))

	_, err = ValidateAccessToken("not.a.token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(signed, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.Equal(t, domain.CodeForbidden, domain.ErrorCode(err))

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err = foreign.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(signed, "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
