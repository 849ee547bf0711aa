// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/rupedia-backend/internal/config"
)

func testManager() *Manager {
	return NewManager(&config.Config{
		App: config.AppConfig{Name: "Rupedia Storefront"},
		JWT: config.JWTConfig{
			Secret:        "test-secret-key-that-is-long-enough-123",
			SessionExpiry: time.Hour,
		},
	})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	manager := testManager()

	token, err := manager.GenerateSessionToken("mona", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "mona", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "mona", claims.Subject)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, err := testManager().GenerateSessionToken("mona", "admin")
	require.NoError(t, err)

	other := NewManager(&config.Config{
		JWT: config.JWTConfig{
			Secret:        "a-completely-different-secret-key-456",
			SessionExpiry: time.Hour,
		},
	})

	_, err = other.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenExpired(t *testing.T) {
	expired := NewManager(&config.Config{
		JWT: config.JWTConfig{
			Secret:        "test-secret-key-that-is-long-enough-123",
			SessionExpiry: -time.Minute,
		},
	})

	token, err := expired.GenerateSessionToken("mona", "admin")
	require.NoError(t, err)

	_, err = expired.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"no token", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
