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

type stubFeedbackGateway struct {
	resources []models.Resource
	rooms     []models.RoomBuilding

	resourceFeedback []models.ResourceFeedbackRequest
	roomFeedback     []models.RoomFeedbackRequest
}

func (s *stubFeedbackGateway) ListResources(context.Context) ([]models.Resource, error) {
	return s.resources, nil
}

func (s *stubFeedbackGateway) RoomBuildingData(context.Context) ([]models.RoomBuilding, error) {
	return s.rooms, nil
}

func (s *stubFeedbackGateway) SubmitResourceFeedback(_ context.Context, req models.ResourceFeedbackRequest) error {
	s.resourceFeedback = append(s.resourceFeedback, req)
	return nil
}

func (s *stubFeedbackGateway) SubmitRoomFeedback(_ context.Context, req models.RoomFeedbackRequest) error {
	s.roomFeedback = append(s.roomFeedback, req)
	return nil
}

func feedbackEngine(stub *stubFeedbackGateway) *gin.Engine {
	h := NewUserFeedbackHandler(stub, nil)
	r := gin.New()
	g := r.Group("/user", withSession(studentSession()))
	g.GET("/feedbacks", h.Show)
	g.POST("/feedbacks/resource", h.SubmitResource)
	g.POST("/feedbacks/room", h.SubmitRoom)
	return r
}

func TestFeedbackShowDefaultsToResourceForm(t *testing.T) {
	stub := &stubFeedbackGateway{
		resources: []models.Resource{{ResourceID: 1, ResourceName: "Raspberry Pi", ResourceType: models.ResourceHardware}},
	}

	w := doGet(feedbackEngine(stub), "/user/feedbacks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Raspberry Pi")
}

func TestSubmitResourceFeedback(t *testing.T) {
	stub := &stubFeedbackGateway{}

	w := doPost(feedbackEngine(stub), "/user/feedbacks/resource", url.Values{
		"resource_id":  {"3"},
		"user_comment": {"screen is scratched"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user", w.Header().Get("Location"))
	require.Len(t, stub.resourceFeedback, 1)
	assert.Equal(t, 9, stub.resourceFeedback[0].UserID)
	assert.Equal(t, 3, stub.resourceFeedback[0].ResourceID)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, "Feedback Successfully Entered", msg.Text)
}

func TestSubmitRoomFeedback(t *testing.T) {
	stub := &stubFeedbackGateway{}

	w := doPost(feedbackEngine(stub), "/user/feedbacks/room", url.Values{
		"room_id":      {"2"},
		"user_comment": {"projector broken"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Len(t, stub.roomFeedback, 1)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, "Feedback Added Successfully.", msg.Text)
}

func TestSubmitRoomFeedbackRequiresComment(t *testing.T) {
	stub := &stubFeedbackGateway{}

	w := doPost(feedbackEngine(stub), "/user/feedbacks/room", url.Values{
		"room_id": {"2"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/feedbacks?form=room", w.Header().Get("Location"))
	assert.Empty(t, stub.roomFeedback)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, flash.Error, msg.Kind)
}
