package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// Auth validates the console-issued JWT and injects its claims into context.
// The role claim is stored as a domain.Role.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			rawRole, _ := claims["role"].(string)
			role, err := domain.ParseRole(rawRole)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token carries no valid role")
			}
			sub, _ := claims.GetSubject()
			email, _ := claims["email"].(string)

			c.Set(ContextKeyUserID, sub)
			c.Set(ContextKeyEmail, email)
			c.Set(ContextKeyRole, role)

			return next(c)
		}
	}
}
