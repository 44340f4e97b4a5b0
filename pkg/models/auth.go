package models

// RegisterRequest creates a new tenant with its first (admin) user.
type RegisterRequest struct {
	AgencyName string `json:"agency_name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required,min=2"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID         int    `json:"id"`
	TenantID   int    `json:"tenant_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	AgencyName string `json:"agency_name,omitempty"`
	Plan       string `json:"plan,omitempty"`
}
