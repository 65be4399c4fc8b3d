package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prospecta/backend/internal/pkg/jwt"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/internal/utils"
)

// JWTAuthMiddleware authenticates sales session tokens. It binds the phone
// number embedded in the token into the request context; handlers never
// trust a phone supplied by the client.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			phone, ok := claims["phone"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing phone claim")
			}
			phoneStr := fmt.Sprintf("%v", phone)
			if phoneStr == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: empty phone claim")
			}

			c.Set("phone", phoneStr)

			return next(c)
		}
	}
}

// AdminAuthMiddleware authenticates admin session tokens. Sales tokens are
// rejected: the admin flag must be present and true.
func AdminAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, err.Error())
			}

			if admin, ok := claims["admin"].(bool); !ok || !admin {
				return utils.UnauthorizedResponse(c, "Admin access required")
			}

			c.Set("admin", true)

			return next(c)
		}
	}
}

// bearerClaims extracts and validates the bearer token from the
// Authorization header
func bearerClaims(c echo.Context, secret string) (map[string]interface{}, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], secret)
	if err != nil {
		return nil, fmt.Errorf("Invalid token")
	}

	return claims, nil
}
