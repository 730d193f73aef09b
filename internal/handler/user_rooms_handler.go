package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
	"github.com/student-hub/booking-portal/pkg/timeutil"
)

type userRoomsGateway interface {
	SearchRooms(ctx context.Context, req models.RoomSearchRequest) ([]models.Room, error)
	BookRoom(ctx context.Context, req models.BookingRequest) error
}

// UserRoomsHandler is the student room search and booking screen.
type UserRoomsHandler struct {
	gateway userRoomsGateway
	logger  *zap.Logger
}

// NewUserRoomsHandler constructs the handler.
func NewUserRoomsHandler(gw userRoomsGateway, logger *zap.Logger) *UserRoomsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRoomsHandler{gateway: gw, logger: logger}
}

type userRoomsPage struct {
	basePage
	Date      string
	StartTime string
	EndTime   string
	Searched  bool
	Rooms     []models.Room
}

// Show renders the empty search form.
func (h *UserRoomsHandler) Show(c *gin.Context) {
	renderPage(c, "user_rooms.tmpl", userRoomsPage{
		basePage: newBasePage(c, "Room Booking", ""),
	})
}

// Search converts the 12-hour window to 24-hour clock values and lists
// matching rooms. Results render directly; the converted window rides
// along as hidden fields for the booking step.
func (h *UserRoomsHandler) Search(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	date := formStr(c, "date")
	start, errStart := timeutil.To24Hour(formStr(c, "start_time"))
	end, errEnd := timeutil.To24Hour(formStr(c, "end_time"))
	if date == "" || errStart != nil || errEnd != nil {
		flash.Set(c.Writer, flash.Error, "Please provide a date and valid start and end times")
		redirect(c, "/user/rooms")
		return
	}

	rooms, err := h.gateway.SearchRooms(c.Request.Context(), models.RoomSearchRequest{
		UserID:    sess.UserID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/user/rooms")
		return
	}

	renderPage(c, "user_rooms.tmpl", userRoomsPage{
		basePage:  newBasePage(c, "Room Booking", ""),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Searched:  true,
		Rooms:     rooms,
	})
}

// Book reserves the chosen room and lands back on the dashboard.
func (h *UserRoomsHandler) Book(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	roomID, ok := formInt(c, "room_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select a room")
		redirect(c, "/user/rooms")
		return
	}

	req := models.BookingRequest{
		UserID:            sess.UserID,
		ReservationDate:   formStr(c, "date"),
		StartTime:         formStr(c, "start_time"),
		EndTime:           formStr(c, "end_time"),
		RoomID:            roomID,
		ReservationStatus: 1,
	}
	if err := h.gateway.BookRoom(c.Request.Context(), req); err != nil {
		flash.Set(c.Writer, flash.Error, "Something went wrong")
		redirect(c, "/user/rooms")
		return
	}

	flash.Set(c.Writer, flash.Success, "Booked Room")
	redirect(c, "/user")
}
