package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// BodyLimit 限制请求体大小，超限读取会让 JSON 绑定返回 body-too-large 错误
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, ginErr := range c.Errors {
			if ginErr.Err == nil {
				continue
			}
			if ginErr.Err.Error() == "http: request body too large" {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体超出限制")
				return
			}
		}
	}
}
