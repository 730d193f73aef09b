// Package session persists the authenticated identity in the user cookie.
// The record is written at login, cleared at logout, and read wherever
// access control or personalisation is needed; no other component touches
// the cookie directly.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/student-hub/booking-portal/internal/models"
)

// CookieName is the single persisted client-state entry.
const CookieName = "user"

// Store signs and verifies the session cookie.
type Store struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type claims struct {
	UserID   int         `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"user_role"`
	jwt.RegisteredClaims
}

// New creates a Store. A non-positive ttl falls back to seven days.
func New(secret string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Store{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Set persists the session with the store's expiry. The record is trusted
// as written by the login flow; no shape validation happens here.
func (s *Store) Set(w http.ResponseWriter, sess models.Session) error {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:   sess.UserID,
		Username: sess.Username,
		Role:     sess.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get returns the session carried by the request, or nil when the cookie
// is missing, malformed, or expired.
func (s *Store) Get(r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	var cl claims
	token, err := jwt.ParseWithClaims(cookie.Value, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil
	}

	return &models.Session{UserID: cl.UserID, Username: cl.Username, Role: cl.Role}
}

// Clear removes the cookie unconditionally.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
