package handler

import (
	"net/http"

	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/middleware"
	"github.com/mflath/TImesheets/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct{ svc service.AuthService }

func NewUsersHandler(svc service.AuthService) *UsersHandler { return &UsersHandler{svc: svc} }

// Register godoc
// @Summary Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.RegisterResponse
// @Failure 409 {object} apierror.APIError
// @Router /users/register [post]
func (h *UsersHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /users/login [post]
func (h *UsersHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePassword PUT /users/password/:username
func (h *UsersHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdatePassword(c.Request.Context(), c.Param("username"), req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User password updated successfully"})
}

// List GET /users
func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get GET /users/:id
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update PUT /users/:id — username and role only.
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.UpdateUser(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// Delete DELETE /users/:id
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// Deactivate PUT /users/deactivate/:id
func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated successfully"})
}

// Reactivate PUT /users/reactivate/:id
func (h *UsersHandler) Reactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User reactivated successfully"})
}

// UpdateProfile PUT /users/profile — operates on the authenticated user.
func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.UpdateProfile(c.Request.Context(), claims.Username, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ToggleTwoFactor PUT /users/two-factor — operates on the authenticated user.
func (h *UsersHandler) ToggleTwoFactor(c *gin.Context) {
	claims := middleware.GetClaims(c)
	enabled, err := h.svc.ToggleTwoFactor(c.Request.Context(), claims.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TwoFactorResponse{
		Message: "Two-factor authentication toggled successfully",
		Enabled: enabled,
	})
}

// SubmitFeedback POST /users/feedback — operates on the authenticated user.
func (h *UsersHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	if err := h.svc.SubmitFeedback(c.Request.Context(), claims.Username, req.Feedback); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback submitted successfully"})
}

// ListFeedback GET /users/feedback
func (h *UsersHandler) ListFeedback(c *gin.Context) {
	resp, err := h.svc.ListFeedback(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
