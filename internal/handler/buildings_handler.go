package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type buildingsGateway interface {
	ListBuildings(ctx context.Context) ([]models.Building, error)
	CreateBuilding(ctx context.Context, payload models.BuildingPayload) error
	UpdateBuilding(ctx context.Context, id int, payload models.BuildingPayload) error
	DeleteBuilding(ctx context.Context, id int) error
}

// BuildingsHandler is the admin building management screen.
type BuildingsHandler struct {
	gateway buildingsGateway
	logger  *zap.Logger
}

// NewBuildingsHandler constructs the handler.
func NewBuildingsHandler(gw buildingsGateway, logger *zap.Logger) *BuildingsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuildingsHandler{gateway: gw, logger: logger}
}

type buildingsPage struct {
	basePage
	Buildings []models.Building
	Selected  *models.Building
	LoadError string
}

// Show renders the screen, refetching the building collection.
func (h *BuildingsHandler) Show(c *gin.Context) {
	page := buildingsPage{
		basePage: newBasePage(c, "Building Management", activeForm(c, "view", "create", "modify", "delete")),
	}

	buildings, err := h.gateway.ListBuildings(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "buildings.tmpl", page)
		return
	}
	page.Buildings = buildings

	if page.Form == "modify" {
		if id, ok := queryInt(c, "selected"); ok {
			for i := range buildings {
				if buildings[i].BuildingID == id {
					page.Selected = &buildings[i]
					break
				}
			}
		}
	}

	renderPage(c, "buildings.tmpl", page)
}

// Create handles the create form submission.
func (h *BuildingsHandler) Create(c *gin.Context) {
	payload, ok := buildingPayloadFromForm(c)
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please fill in all building fields")
		redirect(c, "/admin/building?form=create")
		return
	}

	if err := h.gateway.CreateBuilding(c.Request.Context(), payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/building?form=create")
		return
	}

	flash.Set(c.Writer, flash.Success, "Building created successfully!")
	redirect(c, "/admin/building")
}

// Modify handles the modify form submission.
func (h *BuildingsHandler) Modify(c *gin.Context) {
	id, ok := formInt(c, "building_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select building")
		redirect(c, "/admin/building?form=modify")
		return
	}

	payload, ok := buildingPayloadFromForm(c)
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please fill in all building fields")
		redirect(c, "/admin/building?form=modify")
		return
	}

	if err := h.gateway.UpdateBuilding(c.Request.Context(), id, payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/building?form=modify")
		return
	}

	flash.Set(c.Writer, flash.Success, "Building modified successfully!")
	redirect(c, "/admin/building")
}

// Delete handles the delete form submission.
func (h *BuildingsHandler) Delete(c *gin.Context) {
	id, ok := formInt(c, "building_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select building")
		redirect(c, "/admin/building?form=delete")
		return
	}

	if err := h.gateway.DeleteBuilding(c.Request.Context(), id); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/building?form=delete")
		return
	}

	flash.Set(c.Writer, flash.Success, "Building deleted successfully!")
	redirect(c, "/admin/building")
}

func buildingPayloadFromForm(c *gin.Context) (models.BuildingPayload, bool) {
	name := formStr(c, "department_name")
	floors, ok1 := formInt(c, "no_of_floors")
	rooms, ok2 := formInt(c, "no_of_rooms")
	if name == "" || !ok1 || !ok2 {
		return models.BuildingPayload{}, false
	}
	return models.BuildingPayload{
		DepartmentName: name,
		NoOfFloors:     floors,
		NoOfRooms:      rooms,
	}, true
}
