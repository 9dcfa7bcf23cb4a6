package handlers

import (
	"net/http"

	"streamify/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves the authenticated account surface.
type AccountHandler struct {
	Service user.UserService
}

func NewAccountHandler(svc user.UserService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// GetAccountHandler handles GET /account. AuthMiddleware has already put the
// caller's userID in the context.
func (h *AccountHandler) GetAccountHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.Service.GetAccount(userID.(string))
	if err != nil {
		logger.Error("Failed to load account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		return
	}
	c.JSON(http.StatusOK, account)
}
