package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type resourcesGateway interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, payload models.ResourcePayload) error
	UpdateResource(ctx context.Context, id int, payload models.ResourcePayload) error
	DeleteResource(ctx context.Context, id int) error
}

// ResourcesHandler is the admin resource management screen. Hardware and
// books share one form; rendering and payload shaping branch on the
// resource_type tag exactly once.
type ResourcesHandler struct {
	gateway resourcesGateway
	logger  *zap.Logger
}

// NewResourcesHandler constructs the handler.
func NewResourcesHandler(gw resourcesGateway, logger *zap.Logger) *ResourcesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourcesHandler{gateway: gw, logger: logger}
}

type resourcesPage struct {
	basePage
	Category  models.ResourceType
	Resources []models.Resource
	Filtered  []models.Resource
	Selected  *models.Resource
	LoadError string
}

// Show renders the screen, refetching the catalogue. The category query
// parameter picks which half of the union the forms edit.
func (h *ResourcesHandler) Show(c *gin.Context) {
	page := resourcesPage{
		basePage: newBasePage(c, "Resource Management", activeForm(c, "view", "create", "modify", "delete")),
		Category: resourceCategory(c),
	}

	resources, err := h.gateway.ListResources(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "resources.tmpl", page)
		return
	}
	page.Resources = resources
	page.Filtered = models.FilterResources(resources, page.Category)

	if page.Form == "modify" {
		if id, ok := queryInt(c, "selected"); ok {
			for i := range page.Filtered {
				if page.Filtered[i].ResourceID == id {
					page.Selected = &page.Filtered[i]
					break
				}
			}
		}
	}

	renderPage(c, "resources.tmpl", page)
}

// Create handles the create form submission for the active category.
func (h *ResourcesHandler) Create(c *gin.Context) {
	category := resourceCategory(c)
	back := "/admin/resources?form=create&category=" + string(category)

	name := formStr(c, "resource_name")
	quantity, okQty := formInt(c, "quantity_required")
	if name == "" || !okQty {
		flash.Set(c.Writer, flash.Error, "Please fill in all resource fields")
		redirect(c, back)
		return
	}

	payload := models.ResourcePayload{
		ResourceName:       name,
		ResourceType:       category,
		AvailabilityStatus: checkedFlag(c, "availability_status"),
		QuantityRequired:   quantity,
	}
	if category == models.ResourceHardware {
		payload.DeviceType = formStr(c, "device_type")
		payload.ModelNumber = formStr(c, "model_number")
		payload.DeviceCondition = formStr(c, "device_condition")
		payload.WarrantyStatus = checkedFlag(c, "warranty_status")
		payload.DatePurchased = formStr(c, "date_purchased")
		payload.HardwareFlag = true
	} else {
		payload.Author = formStr(c, "author")
		payload.Description = formStr(c, "description")
		payload.Language = formStr(c, "language")
		payload.BooksFlag = true
	}

	if err := h.gateway.CreateResource(c.Request.Context(), payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, back)
		return
	}

	flash.Set(c.Writer, flash.Success, "Resource created successfully!")
	redirect(c, "/admin/resources")
}

// Modify handles the modify form submission. Only the category-specific
// half of the record is replaced.
func (h *ResourcesHandler) Modify(c *gin.Context) {
	category := resourceCategory(c)
	back := "/admin/resources?form=modify&category=" + string(category)

	id, ok := formInt(c, "resource_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select resource")
		redirect(c, back)
		return
	}

	var payload models.ResourcePayload
	if category == models.ResourceHardware {
		payload = models.ResourcePayload{
			DeviceType:      formStr(c, "device_type"),
			ModelNumber:     formStr(c, "model_number"),
			DeviceCondition: formStr(c, "device_condition"),
			WarrantyStatus:  checkedFlag(c, "warranty_status"),
			DatePurchased:   formStr(c, "date_purchased"),
			HardwareFlag:    true,
		}
	} else {
		payload = models.ResourcePayload{
			Author:    formStr(c, "author"),
			Publisher: formStr(c, "publisher"),
			Language:  formStr(c, "language"),
			BooksFlag: true,
		}
	}

	if err := h.gateway.UpdateResource(c.Request.Context(), id, payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, back)
		return
	}

	flash.Set(c.Writer, flash.Success, "Resource modified successfully!")
	redirect(c, "/admin/resources")
}

// Delete handles the delete form submission.
func (h *ResourcesHandler) Delete(c *gin.Context) {
	id, ok := formInt(c, "resource_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select resource")
		redirect(c, "/admin/resources?form=delete")
		return
	}

	if err := h.gateway.DeleteResource(c.Request.Context(), id); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/resources?form=delete")
		return
	}

	flash.Set(c.Writer, flash.Success, "Resource deleted successfully!")
	redirect(c, "/admin/resources")
}

// resourceCategory reads the union tag from the request, defaulting to
// hardware.
func resourceCategory(c *gin.Context) models.ResourceType {
	raw := c.Query("category")
	if raw == "" {
		raw = formStr(c, "category")
	}
	if models.ResourceType(raw) == models.ResourceBooks {
		return models.ResourceBooks
	}
	return models.ResourceHardware
}

func checkedFlag(c *gin.Context, name string) int {
	if formStr(c, name) != "" {
		return 1
	}
	return 0
}
