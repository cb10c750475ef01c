package middleware

import (
	"errors"
	"net/http"
	"strings"

	"loanbridge/internal/domain/user"
	"loanbridge/pkg/token"

	"github.com/labstack/echo/v4"
)

const actorKey = "auth.actor"

// Auth validates the bearer token and stores the caller's identity on the
// request context. Missing, malformed and expired tokens are all 401;
// role checks happen later and produce 403.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no token provided"})
			}
			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token format"})
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "token expired"})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			// Reject anything outside the closed role set at the boundary.
			role, err := user.ParseRole(claims.Role)
			if err != nil || claims.Role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token payload"})
			}

			SetActor(c, user.Actor{UserID: claims.UserID, Role: role})
			return next(c)
		}
	}
}

// RequireRoles gates a route to the listed roles. Must run after Auth.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
		}
	}
}

// SetActor stores the caller's identity on the request context. Auth calls
// it after token validation; handler tests call it directly.
func SetActor(c echo.Context, a user.Actor) { c.Set(actorKey, a) }

// ActorFrom retrieves the authenticated caller set by Auth.
func ActorFrom(c echo.Context) (user.Actor, bool) {
	actor, ok := c.Get(actorKey).(user.Actor)
	return actor, ok
}
