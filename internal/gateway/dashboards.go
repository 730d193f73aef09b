package gateway

import (
	"context"

	"github.com/student-hub/booking-portal/internal/models"
)

// The dashboard endpoints signal "no data" with a sentinel error string
// instead of an empty list. That quirk is normalised here: a present
// error field means an empty result, never a failure.

type userRef struct {
	UserID int `json:"user_id"`
}

// UpcomingReservations lists a student's future room bookings.
func (c *Client) UpcomingReservations(ctx context.Context, userID int) ([]models.Reservation, error) {
	var envelope struct {
		Reservations []models.Reservation `json:"reservations"`
		Error        string               `json:"error"`
	}
	if err := c.post(ctx, "/users/upcoming-reservations/", userRef{UserID: userID}, &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != "" {
		return nil, nil
	}
	return envelope.Reservations, nil
}

// UpcomingRentals lists a student's active resource rentals.
func (c *Client) UpcomingRentals(ctx context.Context, userID int) ([]models.RentedResource, error) {
	var envelope struct {
		RentedResources []models.RentedResource `json:"rented_resources"`
		Error           string                  `json:"error"`
	}
	if err := c.post(ctx, "/users/upcoming-resources/", userRef{UserID: userID}, &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != "" {
		return nil, nil
	}
	return envelope.RentedResources, nil
}

// RentedRooms lists all booked rooms for the admin dashboard. The backend
// double-nests the rows; the flattened slice is returned.
func (c *Client) RentedRooms(ctx context.Context) ([]models.AdminReservation, error) {
	var envelope struct {
		Reservations []struct {
			Reservations []models.AdminReservation `json:"reservations"`
		} `json:"reservations"`
	}
	if err := c.get(ctx, "/admins/rented-rooms/", &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Reservations) == 0 {
		return nil, nil
	}
	return envelope.Reservations[0].Reservations, nil
}

// RentedResources lists all rented resources for the admin dashboard.
func (c *Client) RentedResources(ctx context.Context) ([]models.RentedResource, error) {
	var envelope struct {
		RentedResources []models.RentedResource `json:"rented_resources"`
		Error           string                  `json:"error"`
	}
	if err := c.get(ctx, "/admins/rented-resources/", &envelope); err != nil {
		return nil, err
	}
	if envelope.Error != "" {
		return nil, nil
	}
	return envelope.RentedResources, nil
}
