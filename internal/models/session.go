package models

// Role tags the two account kinds the portal distinguishes.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleStudent Role = "Student"
)

// Session is the authenticated identity persisted in the user cookie.
// It is written by the login flow, read by guards and screens, and never
// mutated in place.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"user_role"`
}

// Home returns the landing route for the session's role.
func (s *Session) Home() string {
	if s != nil && s.Role == RoleAdmin {
		return "/admin"
	}
	return "/user"
}

// LoginRequest holds credentials forwarded to the booking backend.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// SignupRequest registers a new student account.
type SignupRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}
