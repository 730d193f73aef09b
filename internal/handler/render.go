package handler

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = map[string]*template.Template{}

func init() {
	names := []string{
		"login.tmpl", "signup.tmpl",
		"admin_dashboard.tmpl", "rooms.tmpl", "buildings.tmpl",
		"resources.tmpl", "policies.tmpl", "feedbacks_admin.tmpl",
		"user_dashboard.tmpl", "user_rooms.tmpl", "user_resources.tmpl",
		"user_feedback.tmpl",
	}
	for _, name := range names {
		pages[name] = template.Must(template.New("layout.tmpl").ParseFS(
			templateFS, "templates/layout.tmpl", "templates/"+name))
	}
}

// basePage is embedded by every screen's view data.
type basePage struct {
	Title   string
	Session *models.Session
	Flash   *flash.Message
	Form    string
}

// newBasePage assembles the cross-cutting view state: current session,
// pending notification, and the screen's active form selector.
func newBasePage(c *gin.Context, title, form string) basePage {
	return basePage{
		Title:   title,
		Session: middleware.CurrentSession(c),
		Flash:   flash.Pop(c.Writer, c.Request),
		Form:    form,
	}
}

func renderPage(c *gin.Context, name string, data interface{}) {
	tmpl, ok := pages[name]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %s", name)
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, "layout.tmpl", data); err != nil {
		_ = c.Error(err)
	}
}

// activeForm validates the form query parameter against the screen's
// state set; unknown values fall back to the first (the view state).
func activeForm(c *gin.Context, allowed ...string) string {
	got := c.Query("form")
	for _, a := range allowed {
		if got == a {
			return got
		}
	}
	return allowed[0]
}

func formStr(c *gin.Context, name string) string {
	return strings.TrimSpace(c.PostForm(name))
}

func formInt(c *gin.Context, name string) (int, bool) {
	raw := formStr(c, name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
