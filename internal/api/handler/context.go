package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/api/middleware"
	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// SessionFrom returns the session record the Guard placed in the context.
// A missing record means the route was mounted without a Guard.
func SessionFrom(c echo.Context) (domain.SessionRecord, error) {
	record, ok := c.Get(middleware.ContextKeySession).(domain.SessionRecord)
	if !ok {
		return domain.SessionRecord{}, domain.ErrNoActiveSession
	}
	return record, nil
}

// ctxClaims extracts the caller identity injected by the Auth middleware.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	role, _ = c.Get(middleware.ContextKeyRole).(domain.Role)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(middleware.ContextKeyUserID).(string)
	return userID, role, nil
}
