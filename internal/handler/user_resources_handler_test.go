package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student-hub/booking-portal/internal/flash"
	"github.com/student-hub/booking-portal/internal/models"
	appErrors "github.com/student-hub/booking-portal/pkg/errors"
)

type stubUserResourcesGateway struct {
	catalogue []models.Resource

	available       []models.Resource
	availabilityErr error

	rented  []models.RentalRequest
	rentErr error
}

func (s *stubUserResourcesGateway) ListResources(context.Context) ([]models.Resource, error) {
	return s.catalogue, nil
}

func (s *stubUserResourcesGateway) ResourceAvailability(_ context.Context, req models.ResourceAvailabilityRequest) ([]models.Resource, error) {
	if s.availabilityErr != nil {
		return nil, s.availabilityErr
	}
	return s.available, nil
}

func (s *stubUserResourcesGateway) RentResource(_ context.Context, req models.RentalRequest) error {
	s.rented = append(s.rented, req)
	return s.rentErr
}

func userResourcesEngine(stub *stubUserResourcesGateway, h *UserResourcesHandler) *gin.Engine {
	if h == nil {
		h = NewUserResourcesHandler(stub, nil)
	}
	r := gin.New()
	g := r.Group("/user", withSession(studentSession()))
	g.GET("/resources", h.Show)
	g.POST("/resources/search", h.Search)
	g.POST("/resources/rent", h.Rent)
	return r
}

func TestResourcesShowFiltersByCategory(t *testing.T) {
	stub := &stubUserResourcesGateway{
		catalogue: []models.Resource{
			{ResourceID: 1, ResourceName: "Raspberry Pi", ResourceType: models.ResourceHardware},
			{ResourceID: 2, ResourceName: "Clean Code", ResourceType: models.ResourceBooks},
		},
	}

	w := doGet(userResourcesEngine(stub, nil), "/user/resources?category=books")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Clean Code")
	assert.NotContains(t, body, "Raspberry Pi")
}

func TestResourcesSearchRequiresSelection(t *testing.T) {
	stub := &stubUserResourcesGateway{}

	w := doPost(userResourcesEngine(stub, nil), "/user/resources/search", url.Values{
		"category": {"hardware"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/resources?category=hardware", w.Header().Get("Location"))

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, flash.Error, msg.Kind)
	assert.Equal(t, "Please select a resource", msg.Text)
}

func TestResourcesSearchUnavailable(t *testing.T) {
	stub := &stubUserResourcesGateway{availabilityErr: appErrors.ErrBackend}

	w := doPost(userResourcesEngine(stub, nil), "/user/resources/search", url.Values{
		"category":    {"hardware"},
		"resource_id": {"1"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, "Resource not available for booking", msg.Text)
}

func TestResourcesRentUsesSevenDayTerm(t *testing.T) {
	stub := &stubUserResourcesGateway{}
	h := NewUserResourcesHandler(stub, nil)
	h.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }

	w := doPost(userResourcesEngine(stub, h), "/user/resources/rent", url.Values{
		"resource_id": {"5"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user", w.Header().Get("Location"))
	require.Len(t, stub.rented, 1)
	assert.Equal(t, 5, stub.rented[0].ResourceID)
	assert.Equal(t, 9, stub.rented[0].UserID)
	assert.Equal(t, "2024-03-01", stub.rented[0].ReservationDate)
	assert.Equal(t, "2024-03-08", stub.rented[0].ReturnDate)

	msg := poppedFlash(t, w)
	require.NotNil(t, msg)
	assert.Equal(t, "Resource Rented", msg.Text)
}

func TestResourcesRentRequiresSelection(t *testing.T) {
	stub := &stubUserResourcesGateway{}

	w := doPost(userResourcesEngine(stub, nil), "/user/resources/rent", url.Values{})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, stub.rented)
}
