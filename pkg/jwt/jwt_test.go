package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
	assert.Equal(t, defaultTTL, service.ttl)
}

func TestGenerateToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "user")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key")
	userID := "user-123"
	role := "seller"

	token, err := service.GenerateToken(userID, role)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, role, claims.Role)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "user")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := &Service{secretKey: []byte("test-secret-key"), ttl: -time.Hour}

	token, err := service.GenerateToken("user-123", "user")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_ThirtyDayExpiry(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "user")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 29*24*time.Hour)
	assert.LessOrEqual(t, remaining, 30*24*time.Hour)
}

func TestGenerateToken_EmptyValues(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "", claims.UserID)
	assert.Equal(t, "", claims.Role)
}
