package handlers

import (
	"net/http"

	"streamify/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login. There is no registration endpoint here; accounts
// only come into existence through the signup wizard.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler handles POST /auth/login. Unknown email and wrong password
// produce the same response so the endpoint cannot be used to probe which
// emails have accounts.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
