package utils

import (
	"errors"
	"strings"
	"time"

	"therewecome/models"

	"github.com/golang-jwt/jwt"
)

// TokenClaims are the claims the front-end reads from a login token.
type TokenClaims struct {
	Subject   string
	Email     string
	Role      models.Role
	ExpiresAt time.Time
}

// DecodeToken reads the claims of tokenString without verifying its
// signature. The booking API is the only party that validates tokens.
func DecodeToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}
	token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	tc := &TokenClaims{
		Subject: stringClaim(claims, "sub"),
		Email:   stringClaim(claims, "email"),
		Role:    models.Role(strings.ToUpper(strings.TrimSpace(stringClaim(claims, "role")))),
	}
	if exp, ok := claims["exp"].(float64); ok {
		tc.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return tc, nil
}

// ExtractRoleFromToken returns the role claim of tokenString.
func ExtractRoleFromToken(tokenString string) (models.Role, error) {
	claims, err := DecodeToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Role == "" {
		return "", errors.New("token does not contain a 'role' claim")
	}
	return claims.Role, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
