package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type stubRoomsGateway struct {
	rooms     []models.Room
	buildings []models.Building
	listErr   error

	created []models.RoomPayload
	updated map[int]models.RoomPayload
	deleted []int
}

func (s *stubRoomsGateway) ListRooms(context.Context) ([]models.Room, error) {
	return s.rooms, s.listErr
}

func (s *stubRoomsGateway) ListBuildings(context.Context) ([]models.Building, error) {
	return s.buildings, nil
}

func (s *stubRoomsGateway) CreateRoom(_ context.Context, payload models.RoomPayload) error {
	s.created = append(s.created, payload)
	return nil
}

func (s *stubRoomsGateway) UpdateRoom(_ context.Context, id int, payload models.RoomPayload) error {
	if s.updated == nil {
		s.updated = map[int]models.RoomPayload{}
	}
	s.updated[id] = payload
	return nil
}

func (s *stubRoomsGateway) DeleteRoom(_ context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func roomsEngine(stub *stubRoomsGateway) *gin.Engine {
	h := NewRoomsHandler(stub, nil)
	r := gin.New()
	g := r.Group("/admin", withSession(adminSession()))
	g.GET("/rooms", h.Show)
	g.POST("/rooms/create", h.Create)
	g.POST("/rooms/modify", h.Modify)
	g.POST("/rooms/delete", h.Delete)
	return r
}

func TestRoomsShowListsSortedRooms(t *testing.T) {
	stub := &stubRoomsGateway{
		rooms: []models.Room{
			{RoomID: 2, RoomNo: 305, Capacity: 10, RoomType: models.RoomTypeMeeting, AvailabilityStatus: 1, BuildingID: 1},
			{RoomID: 1, RoomNo: 101, Capacity: 4, RoomType: models.RoomTypeStudy, AvailabilityStatus: 0, BuildingID: 1},
		},
		buildings: []models.Building{{BuildingID: 1, DepartmentName: "Engineering"}},
	}

	w := doGet(roomsEngine(stub), "/admin/rooms")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "View Rooms")
	assert.Contains(t, body, "305")
	// Rooms render in ascending room-number order.
	assert.Less(t, strings.Index(body, ">101<"), strings.Index(body, ">305<"))
}

func TestRoomsShowSurvivesBackendFailure(t *testing.T) {
	stub := &stubRoomsGateway{listErr: appErrors.ErrBackend}

	w := doGet(roomsEngine(stub), "/admin/rooms")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.ErrBackend.Message)
}

func TestRoomsShowModifySelection(t *testing.T) {
	stub := &stubRoomsGateway{
		rooms: []models.Room{{RoomID: 7, RoomNo: 204, Capacity: 6, RoomType: models.RoomTypeLab, BuildingID: 3}},
	}

	w := doGet(roomsEngine(stub), "/admin/rooms?form=modify&selected=7")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="room_id" value="7"`)
}

func TestRoomsCreateResetsToView(t *testing.T) {
	stub := &stubRoomsGateway{}

	w := doPost(roomsEngine(stub), "/admin/rooms/create", url.Values{
		"room_no":      {"401"},
		"capacity":     {"12"},
		"room_type":    {models.RoomTypeMeeting},
		"building_id":  {"2"},
		"availability": {"available"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/rooms", w.Header().Get("Location"))
	require.Len(t, stub.created, 1)
	assert.Equal(t, 401, stub.created[0].RoomNo)
	assert.Equal(t, 1, stub.created[0].AvailabilityStatus)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, flash.Success, msg.Kind)
}

func TestRoomsModifyRequiresSelection(t *testing.T) {
	stub := &stubRoomsGateway{}

	w := doPost(roomsEngine(stub), "/admin/rooms/modify", url.Values{
		"capacity": {"8"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/rooms?form=modify", w.Header().Get("Location"))
	assert.Empty(t, stub.updated)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, flash.Error, msg.Kind)
	assert.Equal(t, "Please select room", msg.Text)
}

func TestRoomsModifyUpdatesSelectedRoom(t *testing.T) {
	stub := &stubRoomsGateway{}

	w := doPost(roomsEngine(stub), "/admin/rooms/modify", url.Values{
		"room_id":      {"7"},
		"room_no":      {"204"},
		"capacity":     {"8"},
		"room_type":    {models.RoomTypeLab},
		"building_id":  {"3"},
		"availability": {"notAvailable"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/rooms", w.Header().Get("Location"))
	require.Contains(t, stub.updated, 7)
	assert.Equal(t, 0, stub.updated[7].AvailabilityStatus)
}

func TestRoomsDeleteRequiresSelection(t *testing.T) {
	stub := &stubRoomsGateway{}

	w := doPost(roomsEngine(stub), "/admin/rooms/delete", url.Values{})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, stub.deleted)
}

func TestRoomsDelete(t *testing.T) {
	stub := &stubRoomsGateway{}

	w := doPost(roomsEngine(stub), "/admin/rooms/delete", url.Values{"room_id": {"3"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/rooms", w.Header().Get("Location"))
	assert.Equal(t, []int{3}, stub.deleted)
}
