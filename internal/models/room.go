package models

// Room types offered by the booking backend.
const (
	RoomTypeStudy   = "Study Room"
	RoomTypeMeeting = "Meeting Room"
	RoomTypeLab     = "Computer Lab"
)

// RoomTypes lists the selectable room kinds in display order.
var RoomTypes = []string{RoomTypeStudy, RoomTypeMeeting, RoomTypeLab}

// Room is a server-owned room record; the portal holds ephemeral copies
// fetched per screen.
type Room struct {
	RoomID             int    `json:"room_id"`
	RoomNo             int    `json:"room_no"`
	Capacity           int    `json:"capacity"`
	RoomType           string `json:"room_type"`
	AvailabilityStatus int    `json:"availability_status"`
	BuildingID         int    `json:"building_id"`
}

// Available reports the backend's 0/1 availability flag as a bool.
func (r Room) Available() bool { return r.AvailabilityStatus != 0 }

// RoomPayload is the create/update body for a room.
type RoomPayload struct {
	RoomNo             int    `json:"room_no"`
	Capacity           int    `json:"capacity"`
	RoomType           string `json:"room_type"`
	AvailabilityStatus int    `json:"availability_status"`
	BuildingID         int    `json:"building_id"`
}

// RoomSearchRequest asks for rooms free in a date/time window. Times are
// 24-hour "HH:MM:SS".
type RoomSearchRequest struct {
	UserID    int    `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BookingRequest creates a reservation for a searched room.
type BookingRequest struct {
	UserID            int    `json:"user_id"`
	ReservationDate   string `json:"reservation_date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	RoomID            int    `json:"room_id"`
	ReservationStatus int    `json:"reservation_status"`
}
