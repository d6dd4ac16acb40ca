package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/pkg/redis"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// RateLimit 基于 Redis 滑动窗口限流，按客户端 IP + 路由计数。
// rdb 为 nil 或 Redis 访问出错时放行，限流只做保护不做硬依赖。
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err == nil && !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}
