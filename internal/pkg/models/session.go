package models

import "time"

// Role identifies which portal a session belongs to
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
	RoleUser     Role = "user"
	RoleService  Role = "service"
)

// IsValid reports whether r is a known portal role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDelivery, RoleUser, RoleService:
		return true
	}
	return false
}

// Session binds a portal login to the bearer token issued by the lab API
type Session struct {
	ID            string    `json:"id"`
	Role          Role      `json:"role"`
	SubjectID     string    `json:"subject_id"`
	DisplayName   string    `json:"display_name,omitempty"`
	UpstreamToken string    `json:"upstream_token"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// LoginRequest carries the credentials of any portal role
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// UpstreamLoginResponse is the shape returned by the lab API login endpoints
type UpstreamLoginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// AuthResponse represents the response after successful portal login
type AuthResponse struct {
	Token     string `json:"token"`
	SubjectID string `json:"subject_id"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
