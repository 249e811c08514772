package middleware

import (
	"strings"

	"displayfleet/config"
	"displayfleet/internal/delivery/api/response"
	deliverycontext "displayfleet/internal/delivery/context"
	"displayfleet/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates dashboard operators with bearer JWTs.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	operatorRole string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	operatorRole := ""
	if cfg != nil && cfg.Auth != nil {
		operatorRole = cfg.Auth.OperatorRole
	}

	return &AuthMiddleware{tokenSvc: tokenSvc, operatorRole: operatorRole}
}

// Authenticate validates the bearer token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetOperator(c, claims)

		return next(c)
	}
}

// RequireRole checks that the authenticated operator holds role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetOperator(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !claims.HasRole(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role+"' role")
			}

			return next(c)
		}
	}
}

// RequireOperator checks for the configured operator role.
func (m *AuthMiddleware) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(m.operatorRole)(next)
}
