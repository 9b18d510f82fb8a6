package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns panics into a structured 500 response.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": msg,
			},
		})
		c.Abort()
	})
}
