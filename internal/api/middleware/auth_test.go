package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"sub":   "user_1",
		"email": "admin@hotel.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	rec, c, called := runAuth(t, "Bearer "+token)
	if !called {
		t.Fatalf("next not called, status %d", rec.Code)
	}
	if c.Get(ContextKeyUserID) != "user_1" {
		t.Fatalf("user id not set")
	}
	if c.Get(ContextKeyEmail) != "admin@hotel.com" {
		t.Fatalf("email not set")
	}
	if c.Get(ContextKeyRole) != domain.RoleAdmin {
		t.Fatalf("role not set as domain.Role")
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"garbage token":  "Bearer not-a-token",
		"expired":        "Bearer " + signToken(t, jwt.MapClaims{"sub": "u", "role": "user", "exp": time.Now().Add(-time.Minute).Unix()}),
		"no expiry":      "Bearer " + signToken(t, jwt.MapClaims{"sub": "u", "role": "user"}),
		"unknown role":   "Bearer " + signToken(t, jwt.MapClaims{"sub": "u", "role": "owner", "exp": time.Now().Add(time.Minute).Unix()}),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec, _, called := runAuth(t, header)
			if called {
				t.Fatalf("should not reach next")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}
