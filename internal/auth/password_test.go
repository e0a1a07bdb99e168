package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret!")
	require.NoError(t, err)
	require.NotEqual(t, "Sup3r$ecret!", hash)

	assert.True(t, CheckPasswordHash("Sup3r$ecret!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Passw0rd!", true},
		{"valid all symbol types", "Aa1@#$%^&+=!", true},
		{"too short", "Aa1!xyz", false},
		{"too long", "Aa1!" + strings.Repeat("x", 30), false},
		{"no uppercase", "passw0rd!", false},
		{"no lowercase", "PASSW0RD!", false},
		{"no digit", "Password!", false},
		{"no symbol", "Passw0rdX", false},
		{"contains space", "Pass w0rd!", false},
		{"contains tab", "Pass\tw0rd!", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidatePassword(tt.password))
		})
	}
}

func TestGenerateRefreshTokenIsUnique(t *testing.T) {
	a, err := GenerateRefreshToken()
	require.NoError(t, err)
	b, err := GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
