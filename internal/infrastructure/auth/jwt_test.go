package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduhub/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret-key", 15, 7)

	pair, err := svc.Generate(42, authorization.RoleStudent)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleStudent, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 15, 7)
	other := NewJWTService("secret-b", 15, 7)

	pair, err := svc.Generate(42, authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRefresh(t *testing.T) {
	svc := NewJWTService("test-secret-key", 15, 7)

	pair, err := svc.Generate(42, authorization.RoleStudent)
	require.NoError(t, err)

	claims, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.Error(t, err, "access token rejected at refresh endpoint")
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4) // min cost keeps the test fast

	hash, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	require.NoError(t, hasher.Verify("s3cret-password", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}
