package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/skillstorm/hotel-management/internal/api/handler"
	"github.com/skillstorm/hotel-management/internal/api/middleware"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/infrastructure/http/handlers"
)

// CatalogDeps is everything the catalog router needs.
type CatalogDeps struct {
	Rooms        ports.RoomService
	Reservations ports.ReservationService
	Directory    ports.DirectoryService
	Probes       map[string]handlers.Probe
	JWTSecret    string
	CORSOrigins  []string
	Log          zerolog.Logger
	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewCatalogRouter builds the catalog API. Reads are public; writes require a
// console-issued token and the listed role.
func NewCatalogRouter(deps CatalogDeps) *echo.Echo {
	e := newEcho(deps.Log, "catalog", deps.Registerer)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	e.GET("/health/ready", handlers.NewHealthDependenciesHandler(deps.Probes).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	auth := middleware.Auth(deps.JWTSecret)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleEmployee)
	staff := middleware.RBAC(domain.RoleEmployee)
	admin := middleware.RBAC(domain.RoleAdmin)

	// --- Rooms ---
	rooms := handler.NewRoomHandler(deps.Rooms)
	e.GET("/rooms/all", rooms.All)
	e.GET("/rooms/number/:roomNumber", rooms.GetByNumber)
	e.GET("/rooms/:id", rooms.Get)
	e.POST("/rooms/new", rooms.Create, auth, staff)
	e.PUT("/rooms/edit/:id", rooms.Edit, auth, staff)
	e.DELETE("/rooms/delete/:id", rooms.Delete, auth, admin)

	// --- Reservations ---
	reservations := handler.NewReservationHandler(deps.Reservations)
	e.GET("/reservations/all", reservations.All)
	e.GET("/reservations/:id", reservations.Get)
	e.POST("/reservations/new", reservations.Create, auth, anyRole)
	e.PUT("/reservations/edit/:id", reservations.Edit, auth, staff)
	e.DELETE("/reservations/delete/:id", reservations.Delete, auth, staff)

	// --- Users ---
	users := handler.NewUserHandler(deps.Directory)
	e.GET("/users/role", users.ByRole, auth, staff)

	return e
}
