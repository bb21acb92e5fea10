package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONError sends an error response with a human-readable message. Internal
// detail stays in the logs, never in the body.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// JSONMessage sends a confirmation response: a message plus an optional
// named payload, e.g. {"message": "...", "bid": {...}}.
func JSONMessage(c *gin.Context, status int, message string, key string, payload any) {
	body := gin.H{"message": message}
	if key != "" {
		body[key] = payload
	}
	c.JSON(status, body)
}
