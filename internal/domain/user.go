package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserProfile is the server-owned account record. The client treats it
// as an immutable snapshot; any mutation goes through the API.
type UserProfile struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Role          Role      `json:"role"`
	Balance       float64   `json:"balance"`
	IsActive      bool      `json:"is_active"`
	IsVerified    bool      `json:"is_verified"`
	ProfileImgURL string    `json:"profile_img_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func (p UserProfile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p UserProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
