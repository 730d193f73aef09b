package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/student-hub/booking-portal/internal/models"
	"github.com/student-hub/booking-portal/internal/session"
)

// ContextSessionKey is the gin context key storing the current session.
const ContextSessionKey = "currentSession"

// RequireSession gates a view on an authenticated session of any role.
// Unauthenticated visitors are sent to the login screen.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Get(c.Request)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// RequireRole gates a view on a session with the given role. A session
// with the wrong role is redirected to its own home, never to the
// requested view.
func RequireRole(store *session.Store, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Get(c.Request)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if sess.Role != role {
			c.Redirect(http.StatusFound, sess.Home())
			c.Abort()
			return
		}
		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by a guard, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	if v, exists := c.Get(ContextSessionKey); exists {
		if sess, ok := v.(*models.Session); ok {
			return sess
		}
	}
	return nil
}
