package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"yapback/internal/presentation"
)

// AuthMiddleware enforces the static bearer credential the SDK sends. An
// empty apiKey accepts any non-empty bearer token, which keeps ad-hoc local
// runs friction-free.
func AuthMiddleware(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get(presentation.AuthKey)
			if authHeader == "" {
				return ctx.String(http.StatusUnauthorized, "missing Authorization header")
			}
			if !strings.HasPrefix(authHeader, presentation.BearerPrefix) {
				return ctx.String(http.StatusUnauthorized, "missing Bearer prefix")
			}

			token := strings.TrimPrefix(authHeader, presentation.BearerPrefix)
			if token == "" {
				return ctx.String(http.StatusUnauthorized, "empty bearer token")
			}

			if apiKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				return ctx.String(http.StatusUnauthorized, "invalid API key")
			}

			return next(ctx)
		}
	}
}
