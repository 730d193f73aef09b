package gateway

import (
	"context"
	"fmt"

	"github.com/student-hub/booking-portal/internal/models"
)

// ListResources fetches the full resource catalogue, hardware and books
// mixed; callers partition by the resource_type tag.
func (c *Client) ListResources(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource
	if err := c.get(ctx, "/admins/resources-details/", &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// CreateResource adds a resource.
func (c *Client) CreateResource(ctx context.Context, payload models.ResourcePayload) error {
	return c.post(ctx, "/admins/resources-details/", payload, nil)
}

// UpdateResource replaces the detail record with the given id.
func (c *Client) UpdateResource(ctx context.Context, id int, payload models.ResourcePayload) error {
	return c.put(ctx, fmt.Sprintf("/admins/resources-details/%d/", id), payload)
}

// DeleteResource removes a resource. Deletion goes through the bare
// resources collection, not the details one.
func (c *Client) DeleteResource(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admins/resources/%d/", id))
}

// ResourceAvailability returns rentable entries for a single resource id.
func (c *Client) ResourceAvailability(ctx context.Context, req models.ResourceAvailabilityRequest) ([]models.Resource, error) {
	var resources []models.Resource
	if err := c.post(ctx, "/users/resource_available/", req, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// RentResource creates a rental.
func (c *Client) RentResource(ctx context.Context, req models.RentalRequest) error {
	return c.post(ctx, "/users/rent/", req, nil)
}
