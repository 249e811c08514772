package service

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by dashboard access tokens.
// The operator identity is carried in the registered subject claim.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the token grants role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// TokenService defines the interface for issuing and validating dashboard JWTs.
type TokenService interface {
	// GenerateToken creates a signed access token for an operator.
	GenerateToken(subject string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
