package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/middleware"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type userFeedbackGateway interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	RoomBuildingData(ctx context.Context) ([]models.RoomBuilding, error)
	SubmitResourceFeedback(ctx context.Context, req models.ResourceFeedbackRequest) error
	SubmitRoomFeedback(ctx context.Context, req models.RoomFeedbackRequest) error
}

// UserFeedbackHandler is the student feedback screen. Its form states are
// the feedback subject kinds, resource and room, rather than the CRUD
// set.
type UserFeedbackHandler struct {
	gateway userFeedbackGateway
	logger  *zap.Logger
}

// NewUserFeedbackHandler constructs the handler.
func NewUserFeedbackHandler(gw userFeedbackGateway, logger *zap.Logger) *UserFeedbackHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserFeedbackHandler{gateway: gw, logger: logger}
}

type userFeedbackPage struct {
	basePage
	Resources []models.Resource
	Rooms     []models.RoomBuilding
	LoadError string
}

// Show fetches both selector collections and renders the active form.
func (h *UserFeedbackHandler) Show(c *gin.Context) {
	page := userFeedbackPage{
		basePage: newBasePage(c, "Feedback", activeForm(c, "resource", "room")),
	}

	resources, err := h.gateway.ListResources(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "user_feedback.tmpl", page)
		return
	}
	page.Resources = resources

	rooms, err := h.gateway.RoomBuildingData(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "user_feedback.tmpl", page)
		return
	}
	page.Rooms = rooms

	renderPage(c, "user_feedback.tmpl", page)
}

// SubmitResource stores feedback about a resource.
func (h *UserFeedbackHandler) SubmitResource(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	resourceID, ok := formInt(c, "resource_id")
	comment := formStr(c, "user_comment")
	if !ok || comment == "" {
		flash.Set(c.Writer, flash.Error, "Please select a resource and enter a comment")
		redirect(c, "/user/feedbacks?form=resource")
		return
	}

	req := models.ResourceFeedbackRequest{
		UserID:      sess.UserID,
		ResourceID:  resourceID,
		UserComment: comment,
	}
	if err := h.gateway.SubmitResourceFeedback(c.Request.Context(), req); err != nil {
		flash.Set(c.Writer, flash.Error, "Something is wrong")
		redirect(c, "/user/feedbacks?form=resource")
		return
	}

	flash.Set(c.Writer, flash.Success, "Feedback Successfully Entered")
	redirect(c, "/user")
}

// SubmitRoom stores feedback about a room.
func (h *UserFeedbackHandler) SubmitRoom(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		redirect(c, "/login")
		return
	}

	roomID, ok := formInt(c, "room_id")
	comment := formStr(c, "user_comment")
	if !ok || comment == "" {
		flash.Set(c.Writer, flash.Error, "Please select a room and enter a comment")
		redirect(c, "/user/feedbacks?form=room")
		return
	}

	req := models.RoomFeedbackRequest{
		UserID:      sess.UserID,
		RoomID:      roomID,
		UserComment: comment,
	}
	if err := h.gateway.SubmitRoomFeedback(c.Request.Context(), req); err != nil {
		flash.Set(c.Writer, flash.Error, "Something is wrong")
		redirect(c, "/user/feedbacks?form=room")
		return
	}

	flash.Set(c.Writer, flash.Success, "Feedback Added Successfully.")
	redirect(c, "/user")
}
