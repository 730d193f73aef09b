package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type policiesGateway interface {
	ListPolicies(ctx context.Context) ([]models.Policy, error)
	CreatePolicy(ctx context.Context, payload models.PolicyPayload) error
	UpdatePolicy(ctx context.Context, id int, payload models.PolicyPayload) error
	DeletePolicy(ctx context.Context, id int) error
}

// PoliciesHandler is the admin policy management screen.
type PoliciesHandler struct {
	gateway policiesGateway
	logger  *zap.Logger
}

// NewPoliciesHandler constructs the handler.
func NewPoliciesHandler(gw policiesGateway, logger *zap.Logger) *PoliciesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PoliciesHandler{gateway: gw, logger: logger}
}

type policiesPage struct {
	basePage
	Policies  []models.Policy
	Selected  *models.Policy
	LoadError string
}

// Show renders the screen, refetching the policy collection.
func (h *PoliciesHandler) Show(c *gin.Context) {
	page := policiesPage{
		basePage: newBasePage(c, "Policy Management", activeForm(c, "view", "create", "modify", "delete")),
	}

	policies, err := h.gateway.ListPolicies(c.Request.Context())
	if err != nil {
		page.LoadError = appErrors.FromError(err).Message
		renderPage(c, "policies.tmpl", page)
		return
	}
	page.Policies = policies

	if page.Form == "modify" {
		if id, ok := queryInt(c, "selected"); ok {
			for i := range policies {
				if policies[i].PolicyID == id {
					page.Selected = &policies[i]
					break
				}
			}
		}
	}

	renderPage(c, "policies.tmpl", page)
}

// Create handles the create form submission.
func (h *PoliciesHandler) Create(c *gin.Context) {
	text := formStr(c, "policy_text")
	if text == "" {
		flash.Set(c.Writer, flash.Error, "Please enter the policy text")
		redirect(c, "/admin/policy?form=create")
		return
	}

	if err := h.gateway.CreatePolicy(c.Request.Context(), models.PolicyPayload{PolicyText: text}); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/policy?form=create")
		return
	}

	flash.Set(c.Writer, flash.Success, "Policy created successfully!")
	redirect(c, "/admin/policy")
}

// Modify handles the modify form submission.
func (h *PoliciesHandler) Modify(c *gin.Context) {
	id, ok := formInt(c, "policy_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select policy")
		redirect(c, "/admin/policy?form=modify")
		return
	}

	text := formStr(c, "policy_text")
	if text == "" {
		flash.Set(c.Writer, flash.Error, "Please enter the policy text")
		redirect(c, "/admin/policy?form=modify")
		return
	}

	if err := h.gateway.UpdatePolicy(c.Request.Context(), id, models.PolicyPayload{PolicyText: text}); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/policy?form=modify")
		return
	}

	flash.Set(c.Writer, flash.Success, "Policy modified successfully!")
	redirect(c, "/admin/policy")
}

// Delete handles the delete form submission.
func (h *PoliciesHandler) Delete(c *gin.Context) {
	id, ok := formInt(c, "policy_id")
	if !ok {
		flash.Set(c.Writer, flash.Error, "Please select policy")
		redirect(c, "/admin/policy?form=delete")
		return
	}

	if err := h.gateway.DeletePolicy(c.Request.Context(), id); err != nil {
		flash.Set(c.Writer, flash.Error, appErrors.FromError(err).Message)
		redirect(c, "/admin/policy?form=delete")
		return
	}

	flash.Set(c.Writer, flash.Success, "Policy deleted successfully!")
	redirect(c, "/admin/policy")
}
