package backend

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

const defaultTokenTTL = 5 * time.Minute

// TokenSigner issues the short-lived HS256 tokens the console presents to the
// catalog API on behalf of the logged-in user.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenSigner) Sign(principal domain.SessionRecord) (string, error) {
	claims := jwt.MapClaims{
		"sub":   principal.ID,
		"email": principal.Email,
		"role":  principal.Role.String(),
		"exp":   s.now().Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
