package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	"github.com/student-hub/booking-portal/internal/session"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type authGateway interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	Signup(ctx context.Context, req models.SignupRequest) error
}

// AuthHandler owns the login, logout, and signup flows; it is the only
// writer of the session cookie.
type AuthHandler struct {
	gateway  authGateway
	sessions *session.Store
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(gw authGateway, sessions *session.Store, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		gateway:  gw,
		sessions: sessions,
		validate: validator.New(),
		logger:   logger,
	}
}

type loginPage struct {
	basePage
	Email string
}

// ShowLogin renders the login screen, skipping straight to the role home
// when a session is already present.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if sess := h.sessions.Get(c.Request); sess != nil {
		redirect(c, sess.Home())
		return
	}
	renderPage(c, "login.tmpl", loginPage{basePage: newBasePage(c, "Login", "")})
}

// Login verifies credentials and writes the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	req := models.LoginRequest{
		Email:    formStr(c, "email"),
		Password: c.PostForm("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		flash.Set(c.Writer, flash.Error, "Please provide a valid email and password")
		redirect(c, "/login")
		return
	}

	sess, err := h.gateway.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, appErrors.ErrInvalidCredentials) {
			flash.Set(c.Writer, flash.Error, "Invalid credentials")
		} else {
			flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		}
		redirect(c, "/login")
		return
	}

	if err := h.sessions.Set(c.Writer, *sess); err != nil {
		h.logger.Error("session write failed", zap.Error(err))
		flash.Set(c.Writer, flash.Error, "Could not start a session, please retry")
		redirect(c, "/login")
		return
	}

	if sess.Role == models.RoleAdmin {
		flash.Set(c.Writer, flash.Success, "Admin Login Successful")
	} else {
		flash.Set(c.Writer, flash.Success, "Student Login Successful")
	}
	redirect(c, sess.Home())
}

// Logout clears the session cookie and returns to the login screen.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c.Writer)
	redirect(c, "/login")
}

type signupPage struct {
	basePage
}

// ShowSignup renders the registration screen.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	renderPage(c, "signup.tmpl", signupPage{basePage: newBasePage(c, "Sign Up", "")})
}

// Signup registers a new account with the backend.
func (h *AuthHandler) Signup(c *gin.Context) {
	req := models.SignupRequest{
		Username: formStr(c, "username"),
		Email:    formStr(c, "email"),
		Password: c.PostForm("password"),
	}
	if err := h.validate.Struct(req); err != nil {
		flash.Set(c.Writer, flash.Error, "Please fill in all signup fields")
		redirect(c, "/signup")
		return
	}

	if err := h.gateway.Signup(c.Request.Context(), req); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/signup")
		return
	}

	flash.Set(c.Writer, flash.Success, "Account created, please log in")
	redirect(c, "/login")
}
