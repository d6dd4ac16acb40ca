package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/authz"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
	"github.com/Mahdi-Salimi/university-management-system/pkg/redis"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// JWTAuth JWT 认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Access Token，
// 校验黑名单后加载账户与能力集，注入调用者身份到上下文。
// rdb 为 nil 时跳过黑名单检查（降级放行）
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client, repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Token 无效或已过期")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "Token 类型无效")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "Token 已失效")
				c.Abort()
				return
			}
		}

		account, err := repo.Account.GetByID(c.Request.Context(), claims.AccountID)
		if err != nil || !account.IsActive {
			response.Unauthorized(c, 10002, "账户不存在或已停用")
			c.Abort()
			return
		}

		capabilities, err := repo.Account.Capabilities(c.Request.Context(), account.ID)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}

		caller := &service.Caller{
			AccountID:    account.ID,
			Username:     account.Username,
			IsStaff:      account.IsStaff,
			Capabilities: authz.NewSet(capabilities),
		}

		c.Set("caller", caller)
		c.Set("claims", claims)

		c.Next()
	}
}

// RequireStaff 管理员检查中间件，能力授权等管理接口只对 staff 开放
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("caller")
		if !exists {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		if !v.(*service.Caller).IsStaff {
			response.Forbidden(c, 10003, "无权限访问")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireCapability 能力检查中间件
// 仅用于目录类资源（只有 all 一级作用域）；
// 角色类资源的分级作用域由 Service 层按调用者裁决。
func RequireCapability(resource authz.Resource, action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("caller")
		if !exists {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		caller := v.(*service.Caller)
		if caller.ResolveTier(resource, action) == authz.TierNone {
			response.Forbidden(c, 10003, "无权限访问")
			c.Abort()
			return
		}

		c.Next()
	}
}
