package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	// Expiry is one hour out.
	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, 60*time.Minute)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 60).Generate(1)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 60).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(1)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 60).Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	digest, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", digest)

	assert.NoError(t, hasher.Verify("hunter22", digest))
	assert.Error(t, hasher.Verify("hunter23", digest))
}
