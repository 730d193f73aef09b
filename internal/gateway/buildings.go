package gateway

import (
	"context"
	"fmt"

	"github.com/student-hub/booking-portal/internal/models"
)

// ListBuildings fetches all buildings.
func (c *Client) ListBuildings(ctx context.Context) ([]models.Building, error) {
	var buildings []models.Building
	if err := c.get(ctx, "/admins/buildings/", &buildings); err != nil {
		return nil, err
	}
	return buildings, nil
}

// CreateBuilding adds a building.
func (c *Client) CreateBuilding(ctx context.Context, payload models.BuildingPayload) error {
	return c.post(ctx, "/admins/buildings/", payload, nil)
}

// UpdateBuilding replaces the building with the given id.
func (c *Client) UpdateBuilding(ctx context.Context, id int, payload models.BuildingPayload) error {
	return c.put(ctx, fmt.Sprintf("/admins/buildings/%d/", id), payload)
}

// DeleteBuilding removes the building with the given id.
func (c *Client) DeleteBuilding(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/admins/buildings/%d/", id))
}
