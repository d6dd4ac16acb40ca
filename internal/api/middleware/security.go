package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders 为所有响应补充安全相关 HTTP 头
func SecurityHeaders() gin.HandlerFunc {
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
		"X-XSS-Protection":       "1; mode=block",
	}
	return func(c *gin.Context) {
		for k, v := range headers {
			c.Header(k, v)
		}
		c.Next()
	}
}
