package handlers

import (
	"github.com/gin-gonic/gin"
)

// respondError writes the JSON error shape the frontend expects.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
