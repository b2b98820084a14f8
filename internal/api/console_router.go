package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/api/handler"
	"github.com/skillstorm/hotel-management/internal/api/middleware"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/infrastructure/http/handlers"
)

// ConsoleDeps is everything the console router needs.
type ConsoleDeps struct {
	Sessions ports.SessionManager
	Views    ports.ViewService
	Probes   map[string]handlers.Probe
	Log      zerolog.Logger
	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewConsoleRouter builds the front-desk console with every destination gated
// on the current session.
func NewConsoleRouter(deps ConsoleDeps) *echo.Echo {
	e := newEcho(deps.Log, "console", deps.Registerer)

	// --- Health probes and metrics (no session required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(deps.Probes).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Session ---
	sessionHandler := handler.NewSessionHandler(deps.Sessions, deps.Log)
	e.GET("/login", sessionHandler.LoginView)
	e.POST("/login", sessionHandler.Login)
	e.POST("/logout", sessionHandler.Logout)
	e.GET("/session", sessionHandler.Session)

	// --- Guarded views ---
	views := handler.NewViewHandler(deps.Views)
	open := middleware.Guard(deps.Sessions, "")
	adminOnly := middleware.Guard(deps.Sessions, domain.RoleAdmin)

	e.GET("/dashboard", views.Dashboard, open)
	e.GET("/reservations", views.Reservations, open)
	e.GET("/reservation/:reservationId", views.Reservation, open)
	e.GET("/rooms", views.Rooms, open)
	e.GET("/browse-rooms", views.BrowseRooms, open)
	e.GET("/room/:roomId", views.Room, open)
	e.POST("/room/:roomId/book", views.Book, open)
	e.GET("/profile", views.Profile, open)
	e.PATCH("/profile", sessionHandler.UpdateProfile, open)
	e.GET("/employees", views.Employees, adminOnly)

	// --- Everything else lands on the dashboard ---
	toLanding := func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, domain.LandingPath)
	}
	e.GET("/", toLanding)
	e.RouteNotFound("/*", toLanding)

	return e
}

// newEcho returns an Echo instance with the middleware both binaries share.
func newEcho(log zerolog.Logger, subsystem string, reg prometheus.Registerer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "hotel",
		Subsystem:  subsystem,
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	return e
}
