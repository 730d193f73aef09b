package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type adminDashboardGateway interface {
	RentedRooms(ctx context.Context) ([]models.AdminReservation, error)
	RentedResources(ctx context.Context) ([]models.RentedResource, error)
}

type userDashboardGateway interface {
	UpcomingReservations(ctx context.Context, userID int) ([]models.Reservation, error)
	UpcomingRentals(ctx context.Context, userID int) ([]models.RentedResource, error)
}

// DashboardHandler renders the admin and student landing screens.
type DashboardHandler struct {
	admin  adminDashboardGateway
	user   userDashboardGateway
	logger *zap.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(admin adminDashboardGateway, user userDashboardGateway, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{admin: admin, user: user, logger: logger}
}

type adminDashboardPage struct {
	basePage
	Reservations []models.AdminReservation
	Rentals      []models.RentedResource
	LoadError    string
}

// Admin shows every booked room and rented resource.
func (h *DashboardHandler) Admin(c *gin.Context) {
	page := adminDashboardPage{basePage: newBasePage(c, "Admin Dashboard", "")}

	reservations, err := h.admin.RentedRooms(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "admin_dashboard.tmpl", page)
		return
	}
	page.Reservations = reservations

	rentals, err := h.admin.RentedResources(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "admin_dashboard.tmpl", page)
		return
	}
	page.Rentals = rentals

	renderPage(c, "admin_dashboard.tmpl", page)
}

type userDashboardPage struct {
	basePage
	Reservations []models.Reservation
	Rentals      []models.RentedResource
	LoadError    string
}

// User shows the student's upcoming reservations and active rentals.
func (h *DashboardHandler) User(c *gin.Context) {
	page := userDashboardPage{basePage: newBasePage(c, "User Dashboard", "")}

	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	reservations, err := h.user.UpcomingReservations(c.Request.Context(), sess.UserID)
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "user_dashboard.tmpl", page)
		return
	}
	page.Reservations = reservations

	rentals, err := h.user.UpcomingRentals(c.Request.Context(), sess.UserID)
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "user_dashboard.tmpl", page)
		return
	}
	page.Rentals = rentals

	renderPage(c, "user_dashboard.tmpl", page)
}
