package handlers

import (
	"net/http"

	"streamify/models"

	"github.com/gin-gonic/gin"
)

// ListPlansHandler handles GET /plans. The catalog is fixed at compile time
// so this never fails.
func ListPlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plans":         models.Plans(),
		"defaultPlanId": models.DefaultPlanID,
	})
}
