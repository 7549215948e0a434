package jwt

import (
	"testing"

	"github.com/markwaveai/markwave-hr/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenCarriesRoleClaims(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "dev@markwave.ai", "emp-1", user.RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	isAdmin, ok := token.Get("is_admin")
	require.True(t, ok)
	assert.Equal(t, true, isAdmin)

	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)

	employeeID, _ := token.Get("employee_id")
	assert.Equal(t, "emp-1", employeeID)
}

func TestAccessTokenEmployeeIsNotAdmin(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateAccessToken("user-2", "emp@markwave.ai", "emp-2", user.RoleEmployee)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	isAdmin, ok := token.Get("is_admin")
	require.True(t, ok)
	assert.Equal(t, false, isAdmin)
}

func TestRevokeRefreshToken(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "1h", "168h")

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
