package dto

import (
	"encoding/json"
	"time"
)

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Role     string `json:"role"     validate:"required,oneof=admin employee supervisor"`
}

type UpdateProfileRequest struct {
	PhoneNumber             *string         `json:"phone_number" validate:"omitempty,max=30"`
	Email                   *string         `json:"email"        validate:"omitempty,email"`
	NotificationPreferences json.RawMessage `json:"notification_preferences"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

// UserResponse is the listing shape: no credential or contact data.
type UserResponse struct {
	ID               uint       `json:"id"`
	Username         string     `json:"username"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	DeactivationDate *time.Time `json:"deactivation_date"`
}

// UserDetailResponse is the admin detail view. The password hash never leaves
// the server.
type UserDetailResponse struct {
	ID               uint       `json:"id"`
	Username         string     `json:"username"`
	Role             string     `json:"role"`
	IsActive         bool       `json:"is_active"`
	DeactivationDate *time.Time `json:"deactivation_date"`
	PhoneNumber      *string    `json:"phone_number"`
	Email            *string    `json:"email"`
	TwoFactorEnabled bool       `json:"two_factor_enabled"`
	Feedback         *string    `json:"feedback"`
}

type TwoFactorResponse struct {
	Message string `json:"message"`
	Enabled bool   `json:"enabled"`
}

type FeedbackEntry struct {
	Username string `json:"username"`
	Feedback string `json:"feedback"`
}
