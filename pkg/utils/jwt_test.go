package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateAccessToken(42, "1234567890", "Ana Lopez", "cajero")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "1234567890", claims.Cedula)
	assert.Equal(t, "Ana Lopez", claims.Name)
	assert.Equal(t, "cajero", claims.Role)
	assert.Equal(t, "salon-pos-api", claims.Issuer)
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret-a", time.Hour)
	token, err := manager.GenerateAccessToken(1, "0000000000", "Admin", "admin")
	require.NoError(t, err)

	other := NewJWTManager("secret-b", time.Hour)
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.GenerateAccessToken(1, "0000000000", "Admin", "admin")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	_, err := manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
