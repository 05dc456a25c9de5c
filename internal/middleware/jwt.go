package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/marina-berth-reservation/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's name claim into the request context.  The
// provided secret must match the one used when issuing tokens.  A request
// without an Authorization header is rejected with 401; a request whose
// token is malformed, badly signed or expired is rejected with 403.
// Handlers behind this middleware can read the authenticated username via
// `c.Get("username")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			// Absence of the token means the caller never authenticated,
			// which is distinct from presenting a bad credential.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing bearer token"})
			}

			name, err := utils.VerifyAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid token"})
			}

			// Store the username for handlers and downstream middleware.
			c.Set("username", name)
			return next(c)
		}
	}
}
