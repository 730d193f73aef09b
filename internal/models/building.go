package models

// Building groups rooms under a department.
type Building struct {
	BuildingID     int    `json:"building_id"`
	DepartmentName string `json:"department_name"`
	NoOfFloors     int    `json:"no_of_floors"`
	NoOfRooms      int    `json:"no_of_rooms"`
}

// BuildingPayload is the create/update body for a building.
type BuildingPayload struct {
	DepartmentName string `json:"department_name"`
	NoOfFloors     int    `json:"no_of_floors"`
	NoOfRooms      int    `json:"no_of_rooms"`
}
