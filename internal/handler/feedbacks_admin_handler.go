package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type feedbackListGateway interface {
	RoomFeedbacks(ctx context.Context) ([]models.RoomFeedback, error)
	ResourceFeedbacks(ctx context.Context) ([]models.ResourceFeedback, error)
}

// AdminFeedbacksHandler is the read-only feedback review screen with a
// rooms tab and a resources tab.
type AdminFeedbacksHandler struct {
	gateway feedbackListGateway
	logger  *zap.Logger
}

// NewAdminFeedbacksHandler constructs the handler.
func NewAdminFeedbacksHandler(gw feedbackListGateway, logger *zap.Logger) *AdminFeedbacksHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminFeedbacksHandler{gateway: gw, logger: logger}
}

type adminFeedbacksPage struct {
	basePage
	RoomFeedbacks     []models.RoomFeedback
	ResourceFeedbacks []models.ResourceFeedback
	LoadError         string
}

// Show fetches both feedback collections and renders the active tab.
func (h *AdminFeedbacksHandler) Show(c *gin.Context) {
	page := adminFeedbacksPage{
		basePage: newBasePage(c, "Feedback Review", activeForm(c, "rooms", "resources")),
	}

	rooms, err := h.gateway.RoomFeedbacks(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "feedbacks_admin.tmpl", page)
		return
	}
	page.RoomFeedbacks = rooms

	resources, err := h.gateway.ResourceFeedbacks(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "feedbacks_admin.tmpl", page)
		return
	}
	page.ResourceFeedbacks = resources

	renderPage(c, "feedbacks_admin.tmpl", page)
}
