package gateway

import (
	"context"
	"fmt"

	"github.com/student-hub/booking-portal/internal/models"
)

// ListPolicies fetches all room policies.
func (c *Client) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	var policies []models.Policy
	if err := c.get(ctx, "/admins/room-policies/", &policies); err != nil {
		return nil, err
	}
	return policies, nil
}

// CreatePolicy adds a policy.
func (c *Client) CreatePolicy(ctx context.Context, payload models.PolicyPayload) error {
	return c.post(ctx, "/admins/room-policies/", payload, nil)
}

// UpdatePolicy replaces the policy with the given id.
func (c *Client) UpdatePolicy(ctx context.Context, id int, payload models.PolicyPayload) error {
	return c.put(ctx, fmt.Sprintf("/admins/room-policies/%d/", id), payload)
}

// DeletePolicy removes the policy with the given id.
func (c *Client) DeletePolicy(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admins/room-policies/%d/", id))
}
