package utils

import (
	"testing"
	"time"

	"therewecome/models"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-known-to-the-front-end"))
	require.NoError(t, err)
	return s
}

func TestDecodeTokenReadsClaimsWithoutSecret(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	token := signedToken(t, jwt.MapClaims{
		"sub":   "u-1",
		"email": "jane@example.com",
		"role":  "admin",
		"exp":   exp,
	})

	claims, err := DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, exp, claims.ExpiresAt.Unix())
}

func TestExtractRoleFromToken(t *testing.T) {
	role, err := ExtractRoleFromToken(signedToken(t, jwt.MapClaims{"role": "STYLIST"}))
	require.NoError(t, err)
	assert.Equal(t, models.RoleStylist, role)

	_, err = ExtractRoleFromToken(signedToken(t, jwt.MapClaims{"sub": "u-1"}))
	assert.Error(t, err)

	_, err = ExtractRoleFromToken("garbage")
	assert.Error(t, err)

	_, err = ExtractRoleFromToken("")
	assert.Error(t, err)
}
