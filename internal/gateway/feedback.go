package gateway

import (
	"context"

	"github.com/student-hub/booking-portal/internal/models"
)

// RoomFeedbacks lists feedback left about rooms.
func (c *Client) RoomFeedbacks(ctx context.Context) ([]models.RoomFeedback, error) {
	var feedbacks []models.RoomFeedback
	if err := c.get(ctx, "/admins/feedbacks_rooms/", &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// ResourceFeedbacks lists feedback left about resources.
func (c *Client) ResourceFeedbacks(ctx context.Context) ([]models.ResourceFeedback, error) {
	var feedbacks []models.ResourceFeedback
	if err := c.get(ctx, "/admins/feedbacks_resources/", &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

// RoomBuildingData returns the room+building join feeding the room
// feedback form's selector. The backend wraps the rows in a data field.
func (c *Client) RoomBuildingData(ctx context.Context) ([]models.RoomBuilding, error) {
	var envelope struct {
		Data []models.RoomBuilding `json:"data"`
	}
	if err := c.get(ctx, "/users/room-building-data/", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// SubmitRoomFeedback stores a student's comment about a room.
func (c *Client) SubmitRoomFeedback(ctx context.Context, req models.RoomFeedbackRequest) error {
	return c.post(ctx, "/users/give_feedback_room/", req, nil)
}

// SubmitResourceFeedback stores a student's comment about a resource.
func (c *Client) SubmitResourceFeedback(ctx context.Context, req models.ResourceFeedbackRequest) error {
	return c.post(ctx, "/users/give_feedback_resources/", req, nil)
}
