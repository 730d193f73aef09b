package gateway

import (
	"context"
	"fmt"

	"github.com/student-hub/booking-portal/internal/models"
)

// ListRooms fetches all rooms.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.get(ctx, "/admins/rooms/", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom adds a room.
func (c *Client) CreateRoom(ctx context.Context, payload models.RoomPayload) error {
	return c.post(ctx, "/admins/rooms/", payload, nil)
}

// UpdateRoom replaces the room with the given id.
func (c *Client) UpdateRoom(ctx context.Context, id int, payload models.RoomPayload) error {
	return c.put(ctx, fmt.Sprintf("/admins/rooms/%d/", id), payload)
}

// DeleteRoom removes the room with the given id.
func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admins/rooms/%d/", id))
}

// SearchRooms returns rooms free inside the requested window. Times must
// already be 24-hour "HH:MM:SS".
func (c *Client) SearchRooms(ctx context.Context, req models.RoomSearchRequest) ([]models.Room, error) {
	var rooms []models.Room
	if err := c.post(ctx, "/users/room_list/", req, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// BookRoom creates a reservation.
func (c *Client) BookRoom(ctx context.Context, req models.BookingRequest) error {
	return c.post(ctx, "/users/insert_room_user/", req, nil)
}
