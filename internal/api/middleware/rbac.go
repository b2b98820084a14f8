package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// RBAC lets the request through when the caller's role satisfies any of the
// allowed roles. Admin satisfies every role.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(domain.Role)
			if role.Valid() {
				for _, allowed := range allowedRoles {
					if role.Satisfies(allowed) {
						return next(c)
					}
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
