package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// signWithTTL builds a token directly so tests can control the expiry.
func signWithTTL(t *testing.T, secret string, userID uint, username string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret)

	tok, err := svc.Issue(42, "alice")
	require.NoError(t, err)

	claims, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_MissingToken(t *testing.T) {
	svc := NewTokenService(testSecret)

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService(testSecret)

	tok := signWithTTL(t, testSecret, 7, "bob", -time.Minute)
	_, err := svc.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc := NewTokenService(testSecret)

	tok := signWithTTL(t, "some_other_secret_entirely_here!!", 7, "bob", time.Hour)
	_, err := svc.Verify(tok)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService(testSecret)

	tok, err := svc.Issue(7, "bob")
	require.NoError(t, err)

	// Flip a byte in the signature segment
	tampered := tok[:len(tok)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := NewTokenService(testSecret)

	_, err := svc.Verify("this.is.garbage")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
