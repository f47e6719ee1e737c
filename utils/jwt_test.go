package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-long-enough-for-hs256"

func TestGenerateAndParseJWT(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateJWT(testSecret, "user-123")
	require.NoError(t, err)

	_, err = ParseJWT("another-secret-entirely", token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseJWT(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerateJWTExpiry(t *testing.T) {
	t.Parallel()

	before := time.Now()
	tokenString, err := GenerateJWT(testSecret, "user-123")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	// Expiry is one hour out, give or take the run time of the test.
	assert.WithinDuration(t, before.Add(TokenTTL), exp.Time, 5*time.Second)
}

func TestParseJWTExpiredToken(t *testing.T) {
	t.Parallel()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, tokenString)
	assert.Error(t, err)
}

func TestParseJWTRejectsNoneAlgorithm(t *testing.T) {
	t.Parallel()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-123"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, tokenString)
	assert.Error(t, err)
}
