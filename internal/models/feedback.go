package models

// RoomFeedback is a student comment about a room, as listed for admins.
type RoomFeedback struct {
	FeedbackID  int    `json:"feedback_id"`
	UserComment string `json:"user_comment"`
	Username    string `json:"username"`
	RoomNo      int    `json:"room_no"`
}

// ResourceFeedback is a student comment about a resource.
type ResourceFeedback struct {
	FeedbackID   int    `json:"feedback_id"`
	UserComment  string `json:"user_comment"`
	Username     string `json:"username"`
	ResourceName string `json:"resource_name"`
}

// RoomFeedbackRequest submits feedback about a room.
type RoomFeedbackRequest struct {
	UserID      int    `json:"user_id"`
	RoomID      int    `json:"room_id"`
	UserComment string `json:"user_comment"`
}

// ResourceFeedbackRequest submits feedback about a resource.
type ResourceFeedbackRequest struct {
	UserID      int    `json:"user_id"`
	ResourceID  int    `json:"resource_id"`
	UserComment string `json:"user_comment"`
}

// RoomBuilding is the room+building join used by the room feedback form.
type RoomBuilding struct {
	RoomID         int    `json:"room_id"`
	RoomNo         int    `json:"room_no"`
	DepartmentName string `json:"department_name"`
}
