package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/api/metrics"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// ContextKeySession holds the domain.SessionRecord of an allowed request.
const ContextKeySession = "session"

type loadingResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

// Guard gates a console destination on the current session. While the
// session is still loading it answers 503 and never redirects; redirects use
// 303 so the protected URL is replaced rather than revisited.
func Guard(sessions ports.SessionReader, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := sessions.State()
			decision := domain.Decide(state, required)
			metrics.GuardDecisionsTotal.WithLabelValues(decision.Outcome.String()).Inc()

			switch decision.Outcome {
			case domain.OutcomeLoading:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, loadingResponse{State: "initializing", Message: "Loading..."})
			case domain.OutcomeAllow:
				c.Set(ContextKeySession, *state.User)
				return next(c)
			default:
				return c.Redirect(http.StatusSeeOther, decision.Location)
			}
		}
	}
}
