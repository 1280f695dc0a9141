package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	activeActivitiesCacheKey = "activities:active"
	activeActivitiesCacheTTL = 10 * time.Minute
)

type ActivitiesHandler struct {
	svc service.ActivityService
	rdb *redis.Client
}

func NewActivitiesHandler(svc service.ActivityService, rdb *redis.Client) *ActivitiesHandler {
	return &ActivitiesHandler{svc: svc, rdb: rdb}
}

// List GET /api/activities
func (h *ActivitiesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListActive GET /api/activities/active — cache-aside via Redis.
func (h *ActivitiesHandler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.rdb.Get(ctx, activeActivitiesCacheKey).Bytes(); err == nil {
		var resp []dto.ActivityResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.ListActive(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), activeActivitiesCacheKey, b, activeActivitiesCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// Create POST /api/activities
func (h *ActivitiesHandler) Create(c *gin.Context) {
	var req dto.ActivityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusCreated, resp)
}

// Update PUT /api/activities/:id
func (h *ActivitiesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActivityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Rename(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Activity updated"})
}

// Delete DELETE /api/activities/:id
func (h *ActivitiesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// Hide PUT /api/activities/hide/:id
func (h *ActivitiesHandler) Hide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Hide(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Activity hidden"})
}

// Unhide PUT /api/activities/unhide/:id
func (h *ActivitiesHandler) Unhide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Unhide(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateCache(c)
	c.JSON(http.StatusOK, gin.H{"message": "Activity unhidden"})
}

func (h *ActivitiesHandler) invalidateCache(c *gin.Context) {
	_ = h.rdb.Del(c.Request.Context(), activeActivitiesCacheKey).Err()
}
