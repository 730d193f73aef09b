package handler

import (
	"context"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type roomsGateway interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListBuildings(ctx context.Context) ([]models.Building, error)
	CreateRoom(ctx context.Context, payload models.RoomPayload) error
	UpdateRoom(ctx context.Context, id int, payload models.RoomPayload) error
	DeleteRoom(ctx context.Context, id int) error
}

// RoomsHandler is the admin room management screen: a view table plus
// create/modify/delete forms over the room collection.
type RoomsHandler struct {
	gateway roomsGateway
	logger  *zap.Logger
}

// NewRoomsHandler constructs the handler.
func NewRoomsHandler(gw roomsGateway, logger *zap.Logger) *RoomsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomsHandler{gateway: gw, logger: logger}
}

type roomsPage struct {
	basePage
	Rooms     []models.Room
	Buildings []models.Building
	RoomTypes []string
	Selected  *models.Room
	LoadError string
}

// Show renders the screen in its active form state, refetching the room
// and building collections on every entry.
func (h *RoomsHandler) Show(c *gin.Context) {
	page := roomsPage{
		basePage:  newBasePage(c, "Room Management", activeForm(c, "view", "create", "modify", "delete")),
		RoomTypes: models.RoomTypes,
	}

	rooms, err := h.gateway.ListRooms(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "rooms.tmpl", page)
		return
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomNo < rooms[j].RoomNo })
	page.Rooms = rooms

	buildings, err := h.gateway.ListBuildings(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "rooms.tmpl", page)
		return
	}
	page.Buildings = buildings

	if page.Form == "modify" {
		if id, ok := queryInt(c, "selected"); ok {
			for i := range rooms {
				if rooms[i].RoomID == id {
					page.Selected = &rooms[i]
					break
				}
			}
		}
	}

	renderPage(c, "rooms.tmpl", page)
}

// Create handles the create form submission and resets to the view state.
func (h *RoomsHandler) Create(c *gin.Context) {
	payload, ok := roomPayloadFromForm(c)
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please fill in all room fields")
		redirect(c, "/admin/rooms?form=create")
		return
	}

	if err := h.gateway.CreateRoom(c.Request.Context(), payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/rooms?form=create")
		return
	}

	flash.Set(c.Writer, flash.Success, "Room created successfully!")
	redirect(c, "/admin/rooms")
}

// Modify handles the modify form submission. An empty selection never
// reaches the gateway.
func (h *RoomsHandler) Modify(c *gin.Context) {
	id, ok := formInt(c, "room_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select room")
		redirect(c, "/admin/rooms?form=modify")
		return
	}

	payload, ok := roomPayloadFromForm(c)
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please fill in all room fields")
		redirect(c, "/admin/rooms?form=modify")
		return
	}

	if err := h.gateway.UpdateRoom(c.Request.Context(), id, payload); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/rooms?form=modify")
		return
	}

	flash.Set(c.Writer, flash.Success, "Room modified successfully!")
	redirect(c, "/admin/rooms")
}

// Delete handles the delete form submission.
func (h *RoomsHandler) Delete(c *gin.Context) {
	id, ok := formInt(c, "room_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select room")
		redirect(c, "/admin/rooms?form=delete")
		return
	}

	if err := h.gateway.DeleteRoom(c.Request.Context(), id); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/rooms?form=delete")
		return
	}

	flash.Set(c.Writer, flash.Success, "Room deleted successfully!")
	redirect(c, "/admin/rooms")
}

func roomPayloadFromForm(c *gin.Context) (models.RoomPayload, bool) {
	roomNo, ok1 := formInt(c, "room_no")
	capacity, ok2 := formInt(c, "capacity")
	buildingID, ok3 := formInt(c, "building_id")
	roomType := formStr(c, "room_type")
	if !ok1 || !ok2 || !ok3 || roomType == "" {
		return models.RoomPayload{}, false
	}

	availability := 0
	if formStr(c, "availability") == "available" {
		availability = 1
	}

	return models.RoomPayload{
		RoomNo:             roomNo,
		Capacity:           capacity,
		RoomType:           roomType,
		AvailabilityStatus: availability,
		BuildingID:         buildingID,
	}, true
}
