package gateway

import (
	"context"
	"errors"
	"net/http"

	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

// Login verifies credentials against the backend. The backend answers a
// failed login with 404; that convention stays inside this method and is
// surfaced as ErrInvalidCredentials everywhere else.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	var records []models.Session
	if err := c.post(ctx, "/login_verification/", req, &records); err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) && appErr.Status == http.StatusNotFound {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if len(records) == 0 {
		return nil, appErrors.ErrInvalidCredentials
	}
	return &records[0], nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) error {
	return c.post(ctx, "/signup", req, nil)
}
