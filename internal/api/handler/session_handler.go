package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/api/metrics"
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

const demoPassword = "password123"

var (
	roleOptions = []roleOption{
		{Value: domain.RoleUser, Label: "Guest"},
		{Value: domain.RoleEmployee, Label: "Employee"},
		{Value: domain.RoleAdmin, Label: "Admin"},
	}
	demoAccounts = []demoAccount{
		{Label: "Guest", Email: "guest@hotel.com", Password: demoPassword, Role: domain.RoleUser},
		{Label: "Employee", Email: "employee@hotel.com", Password: demoPassword, Role: domain.RoleEmployee},
		{Label: "Admin", Email: "admin@hotel.com", Password: demoPassword, Role: domain.RoleAdmin},
	}
)

// SessionHandler serves login, logout and profile edits of the console session.
type SessionHandler struct {
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewSessionHandler(sessions ports.SessionManager, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, log: log}
}

// LoginView handles GET /login.
func (h *SessionHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, loginView{
		Authenticated: h.sessions.State().IsAuthenticated,
		Roles:         roleOptions,
		DemoAccounts:  demoAccounts,
	})
}

// Login handles POST /login. The form is checked here before the session
// manager, which repeats the email and role checks, is called.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		metrics.SessionOperationsTotal.WithLabelValues("login", "invalid").Inc()
		return domain.Invalid("", "Please fill in all fields")
	}
	if !domain.ValidEmail(req.Email) {
		metrics.SessionOperationsTotal.WithLabelValues("login", "invalid").Inc()
		return domain.Invalid("email", "Please enter a valid email")
	}
	if req.Role == "" {
		req.Role = string(domain.RoleUser)
	}
	if err := c.Validate(&req); err != nil {
		metrics.SessionOperationsTotal.WithLabelValues("login", "invalid").Inc()
		return err
	}

	record, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.SessionOperationsTotal.WithLabelValues("login", "invalid").Inc()
			return err
		}
		metrics.SessionOperationsTotal.WithLabelValues("login", "error").Inc()
		h.log.Error().Err(err).Msg("login failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed. Please try again.")
	}

	metrics.SessionOperationsTotal.WithLabelValues("login", "ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{User: record, Redirect: domain.LandingPath})
}

// Logout handles POST /logout. Failures of the durable slot are absorbed by
// the manager; an error here means the logout was not applied.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		h.log.Error().Err(err).Msg("logout was not applied")
		metrics.SessionOperationsTotal.WithLabelValues("logout", "error").Inc()
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Logout failed. Please try again.")
	}
	metrics.SessionOperationsTotal.WithLabelValues("logout", "ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Redirect: domain.LoginPath})
}

// Session handles GET /session.
func (h *SessionHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessions.State())
}

// UpdateProfile handles PATCH /profile. Keys left out keep their value and a
// null name resets it to the email's local part. The role cannot be changed.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<16))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if _, ok := keys["role"]; ok {
		metrics.SessionOperationsTotal.WithLabelValues("update", "invalid").Inc()
		return domain.Invalid("role", "role is fixed at login")
	}

	var update domain.UserUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	record, err := h.sessions.UpdateUser(c.Request().Context(), update)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrValidation) {
			result = "invalid"
		}
		metrics.SessionOperationsTotal.WithLabelValues("update", result).Inc()
		return err
	}

	metrics.SessionOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, sessionResponse{User: record})
}
