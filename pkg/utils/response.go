package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse writes the error contract body {"error": message} and logs
// the machine-readable error code.
func ErrorResponse(c *gin.Context, statusCode int, message string, errorCode string) {
	logger := Logger.Warn
	if statusCode > 499 && statusCode < 600 {
		logger = Logger.Error
	}
	logger(message,
		zap.Int("status", statusCode),
		zap.String("code", errorCode),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(statusCode, gin.H{"error": message})
}

// MessageResponse writes a plain {"message": ...} body.
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}
