package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	"github.com/student-hub/booking-portal/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withSession stands in for the access guard: it attaches a session to
// the context without touching cookies.
func withSession(sess *models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			c.Set(middleware.ContextSessionKey, sess)
		}
		c.Next()
	}
}

func adminSession() *models.Session {
	return &models.Session{UserID: 1, Username: "amin", Role: models.RoleAdmin}
}

func studentSession() *models.Session {
	return &models.Session{UserID: 9, Username: "dana", Role: models.RoleStudent}
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func doPost(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookieFor writes the session through a store and hands back the
// resulting cookie for replay on a test request.
func sessionCookieFor(t *testing.T, store *session.Store, sess models.Session) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	if err := store.Set(w, sess); err != nil {
		t.Fatalf("write session: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one session cookie, got %d", len(cookies))
	}
	return cookies[0]
}

// poppedFlash reads the notification the handler left for the next page.
func poppedFlash(t *testing.T, w *httptest.ResponseRecorder) *flash.Message {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return flash.Pop(httptest.NewRecorder(), req)
}
