package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dench1k1ng/final-web-backend/internal/core/domain"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", "taskmanager", time.Minute)

	token, err := manager.GenerateAccessToken("u-1", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", actor.UserID)
	require.Equal(t, domain.RoleAdmin, actor.Role)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", "taskmanager", -time.Minute)

	token, err := manager.GenerateAccessToken("u-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", "taskmanager", time.Minute)
	other := NewJWTManager("other-secret", "taskmanager", time.Minute)

	token, err := manager.GenerateAccessToken("u-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsWrongIssuer(t *testing.T) {
	manager := NewJWTManager("test-secret", "taskmanager", time.Minute)
	other := NewJWTManager("test-secret", "someone-else", time.Minute)

	token, err := manager.GenerateAccessToken("u-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsEmptyToken(t *testing.T) {
	manager := NewJWTManager("test-secret", "taskmanager", time.Minute)

	_, err := manager.ValidateAccessToken("")
	require.Error(t, err)
}
