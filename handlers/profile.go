package handlers

import (
	"net/http"

	"streamify/models"
	"streamify/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the who-is-watching screen.
type ProfileHandler struct {
	Service profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

func requireUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID.(string), true
}

// ListProfilesHandler handles GET /profiles.
func (h *ProfileHandler) ListProfilesHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": h.Service.List(userID)})
}

// GetProfileHandler handles GET /profiles/:profileId.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.Service.Get(userID, c.Param("profileId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PUT /profiles/:profileId.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid profile update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("profileId")

	updated, err := h.Service.Update(userID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SelectProfileHandler handles POST /profiles/:profileId/select. The chosen
// id is recorded against the viewer session; nothing reads it back yet.
func (h *ProfileHandler) SelectProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.Service.Select(c.Request.Context(), userID, c.Param("profileId")); err != nil {
		logger.Error("Failed to select profile", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile selected"})
}
