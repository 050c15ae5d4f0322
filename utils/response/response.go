package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Message sends a standardized message response
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
