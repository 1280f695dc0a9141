package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Username    string  `json:"username"     validate:"required,min=1,max=150"`
	Password    string  `json:"password"     validate:"required,min=6"`
	Role        string  `json:"role"         validate:"required,oneof=admin employee supervisor"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=30"`
	Email       *string `json:"email"        validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
