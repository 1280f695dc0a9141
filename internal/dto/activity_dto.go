package dto

type ActivityRequest struct {
	Name string `json:"name" validate:"required,min=3"`
}

type ActivityResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}
