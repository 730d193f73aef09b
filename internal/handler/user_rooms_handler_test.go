package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
)

type stubUserRoomsGateway struct {
	rooms     []models.Room
	searchReq *models.RoomSearchRequest

	booked  []models.BookingRequest
	bookErr error
}

func (s *stubUserRoomsGateway) SearchRooms(_ context.Context, req models.RoomSearchRequest) ([]models.Room, error) {
	s.searchReq = &req
	return s.rooms, nil
}

func (s *stubUserRoomsGateway) BookRoom(_ context.Context, req models.BookingRequest) error {
	s.booked = append(s.booked, req)
	return s.bookErr
}

func userRoomsEngine(stub *stubUserRoomsGateway) *gin.Engine {
	h := NewUserRoomsHandler(stub, nil)
	r := gin.New()
	g := r.Group("/user", withSession(studentSession()))
	g.GET("/rooms", h.Show)
	g.POST("/rooms/search", h.Search)
	g.POST("/rooms/book", h.Book)
	return r
}

func TestSearchConvertsTo24HourClock(t *testing.T) {
	stub := &stubUserRoomsGateway{
		rooms: []models.Room{{RoomID: 4, RoomNo: 210, Capacity: 6, RoomType: models.RoomTypeStudy, AvailabilityStatus: 1}},
	}

	w := doPost(userRoomsEngine(stub), "/user/rooms/search", url.Values{
		"date":       {"2024-03-01"},
		"start_time": {"02:00:00 PM"},
		"end_time":   {"04:30:00 PM"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.searchReq)
	assert.Equal(t, 9, stub.searchReq.UserID)
	assert.Equal(t, "14:00:00", stub.searchReq.StartTime)
	assert.Equal(t, "16:30:00", stub.searchReq.EndTime)
	assert.Contains(t, w.Body.String(), "210")
}

func TestSearchMidnightEdge(t *testing.T) {
	stub := &stubUserRoomsGateway{}

	w := doPost(userRoomsEngine(stub), "/user/rooms/search", url.Values{
		"date":       {"2024-03-01"},
		"start_time": {"12:00:00 AM"},
		"end_time":   {"12:30:00 PM"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.searchReq)
	assert.Equal(t, "00:00:00", stub.searchReq.StartTime)
	assert.Equal(t, "12:30:00", stub.searchReq.EndTime)
}

func TestSearchRejectsInvalidWindow(t *testing.T) {
	stub := &stubUserRoomsGateway{}

	w := doPost(userRoomsEngine(stub), "/user/rooms/search", url.Values{
		"date":       {"2024-03-01"},
		"start_time": {"25:00:00 PM"},
		"end_time":   {"04:00:00 PM"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/rooms", w.Header().Get("Location"))
	assert.Nil(t, stub.searchReq)
}

func TestBookRoom(t *testing.T) {
	stub := &stubUserRoomsGateway{}

	w := doPost(userRoomsEngine(stub), "/user/rooms/book", url.Values{
		"room_id":    {"4"},
		"date":       {"2024-03-01"},
		"start_time": {"14:00:00"},
		"end_time":   {"16:30:00"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user", w.Header().Get("Location"))
	require.Len(t, stub.booked, 1)
	assert.Equal(t, 4, stub.booked[0].RoomID)
	assert.Equal(t, 9, stub.booked[0].UserID)
	assert.Equal(t, 1, stub.booked[0].ReservationStatus)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, flash.Success, msg.Kind)
	assert.Equal(t, "Booked Room", msg.Text)
}

func TestBookRoomRequiresSelection(t *testing.T) {
	stub := &stubUserRoomsGateway{}

	w := doPost(userRoomsEngine(stub), "/user/rooms/book", url.Values{
		"date": {"2024-03-01"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/rooms", w.Header().Get("Location"))
	assert.Empty(t, stub.booked)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, "Please select a room", msg.Text)
}
