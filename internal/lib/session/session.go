// Package session mints and verifies the admin session: an HS256 JWT
// carrying a role claim, delivered in a signed, http-only cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
)

const (
	CookieName = "admin_token"
	RoleAdmin  = "admin"
	TTL        = 7 * 24 * time.Hour
)

var (
	// ErrNoSession means the request carries no session cookie.
	ErrNoSession = errors.New("no session cookie")
	// ErrInvalidToken covers a bad cookie signature and a bad or expired JWT.
	ErrInvalidToken = errors.New("invalid session token")
)

type Claims struct {
	Role      string
	ExpiresAt time.Time
}

// Manager issues and verifies session cookies.
type Manager struct {
	secret []byte
	cookie *securecookie.SecureCookie
	secure bool
	ttl    time.Duration
	now    func() time.Time
}

// NewManager builds a Manager from the auth config. Cookies are marked
// Secure when secure is true (production).
func NewManager(cfg config.AuthConfig, secure bool) *Manager {
	codec := securecookie.New([]byte(cfg.CookieSecret), nil)
	codec.MaxAge(int(TTL.Seconds()))

	return &Manager{
		secret: []byte(cfg.SecretKey),
		cookie: codec,
		secure: secure,
		ttl:    TTL,
		now:    time.Now,
	}
}

// Issue mints a token for role and wraps it in the session cookie.
func (m *Manager) Issue(role string) (*http.Cookie, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("jwt secret not configured")
	}

	expiresAt := m.now().Add(m.ttl)
	claims := jwt.MapClaims{
		"role": role,
		"iat":  m.now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	encoded, err := m.cookie.Encode(CookieName, token)
	if err != nil {
		return nil, fmt.Errorf("encoding session cookie: %w", err)
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear returns a cookie that removes the session from the browser.
func (m *Manager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Verify reads the session cookie from r and returns its claims.
func (m *Manager) Verify(r *http.Request) (Claims, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Claims{}, ErrNoSession
	}

	var token string
	if err := m.cookie.Decode(CookieName, c.Value, &token); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return m.parse(token)
}

func (m *Manager) parse(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Role: role, ExpiresAt: exp.Time}, nil
}
