package models

// Reservation is an upcoming booking on the student dashboard.
type Reservation struct {
	RoomID          int    `json:"room_id"`
	RoomNo          int    `json:"room_no"`
	StartTime       string `json:"start_time"`
	ReservationDate string `json:"reservation_date"`
}

// RentedResource is an active rental on the student dashboard.
type RentedResource struct {
	ResourceID      int    `json:"resource_id"`
	ResourceName    string `json:"resource_name"`
	ReservationDate string `json:"reservation_date"`
	ReturnDate      string `json:"return_date"`
}

// AdminReservation is a booked-room row on the admin dashboard.
type AdminReservation struct {
	RoomID          int    `json:"room_id"`
	RoomNo          int    `json:"room_no"`
	DepartmentName  string `json:"department_name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Username        string `json:"username"`
	ReservationDate string `json:"reservation_date"`
}
