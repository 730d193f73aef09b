package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

// rentalTermDays is the implicit rental term: return date is reservation
// date plus seven days.
const rentalTermDays = 7

type userResourcesGateway interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	ResourceAvailability(ctx context.Context, req models.ResourceAvailabilityRequest) ([]models.Resource, error)
	RentResource(ctx context.Context, req models.RentalRequest) error
}

// UserResourcesHandler is the student resource rental screen: pick a
// category, pick a resource, check availability, rent.
type UserResourcesHandler struct {
	gateway userResourcesGateway
	logger  *zap.Logger
	now     func() time.Time
}

// NewUserResourcesHandler constructs the handler.
func NewUserResourcesHandler(gw userResourcesGateway, logger *zap.Logger) *UserResourcesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserResourcesHandler{gateway: gw, logger: logger, now: time.Now}
}

type userResourcesPage struct {
	basePage
	Category    models.ResourceType
	HasCategory bool
	Options     []models.Resource
	SelectedID  int
	Searched    bool
	Results     []models.Resource
	LoadError   string
}

// Show renders the category and resource selectors. Changing the category
// reloads the page with the catalogue filtered by tag.
func (h *UserResourcesHandler) Show(c *gin.Context) {
	page := userResourcesPage{basePage: newBasePage(c, "Resource Rental", "")}

	rawCategory := c.Query("category")
	if rawCategory != "" {
		page.Category = models.ResourceType(rawCategory)
		if page.Category != models.ResourceBooks {
			page.Category = models.ResourceHardware
		}
		page.HasCategory = true

		all, err := h.gateway.ListResources(c.Request.Context())
		if err != nil {
			page.LoadError = appErrors.FromError(err).Message
			renderPage(c, "user_resources.tmpl", page)
			return
		}
		page.Options = models.FilterResources(all, page.Category)
	}

	renderPage(c, "user_resources.tmpl", page)
}

// Search checks availability for the selected resource and renders the
// result rows. An empty selection never issues a call.
func (h *UserResourcesHandler) Search(c *gin.Context) {
	resourceID, ok := formInt(c, "resource_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select a resource")
		redirect(c, "/user/resources?category="+formStr(c, "category"))
		return
	}

	category := models.ResourceType(formStr(c, "category"))
	page := userResourcesPage{
		basePage:    newBasePage(c, "Resource Rental", ""),
		Category:    category,
		HasCategory: true,
		SelectedID:  resourceID,
		Searched:    true,
	}

	all, err := h.gateway.ListResources(c.Request.Context())
	if err == nil {
		page.Options = models.FilterResources(all, category)
	}

	results, err := h.gateway.ResourceAvailability(c.Request.Context(), models.ResourceAvailabilityRequest{ResourceID: resourceID})
	if err != nil {
		flash.Set(c.Writer, flash.Error, "Resource not available for booking")
		redirect(c, "/user/resources?category="+string(category))
		return
	}
	page.Results = results

	renderPage(c, "user_resources.tmpl", page)
}

// Rent creates a rental with the implicit 7-day term and lands back on
// the dashboard.
func (h *UserResourcesHandler) Rent(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	resourceID, ok := formInt(c, "resource_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select a resource")
		redirect(c, "/user/resources")
		return
	}

	today := h.now()
	req := models.RentalRequest{
		ResourceID:      resourceID,
		UserID:          sess.UserID,
		ReservationDate: today.Format("2006-01-02"),
		ReturnDate:      today.AddDate(0, 0, rentalTermDays).Format("2006-01-02"),
	}
	if err := h.gateway.RentResource(c.Request.Context(), req); err != nil {
		flash.Set(c.Writer, flash.Error, "Something went wrong")
		redirect(c, "/user/resources")
		return
	}

	flash.Set(c.Writer, flash.Success, "Resource Rented")
	redirect(c, "/user")
}
