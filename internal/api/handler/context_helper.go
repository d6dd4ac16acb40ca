package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// MustGetCaller 从上下文提取调用者身份，失败时写入 401 响应
func MustGetCaller(c *gin.Context) (*service.Caller, bool) {
	v, exists := c.Get("caller")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}

	caller, ok := v.(*service.Caller)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}

	return caller, true
}

// MustGetClaims 从上下文提取 JWT Claims，失败时写入 401 响应
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}

	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}

	return claims, true
}

// parseIDParam 解析路径参数为数字主键，失败时写入 400 响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "路径参数 "+name+" 无效")
		return 0, false
	}
	return uint(id), true
}

// parseIDOrMe 解析角色资源的路径参数；"me" 映射为 0，表示调用者本人
func parseIDOrMe(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	if raw == "me" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, 10001, "路径参数 "+name+" 无效")
		return 0, false
	}
	return uint(id), true
}

// bindPagination 解析分页查询参数，失败时写入 400 响应
func bindPagination(c *gin.Context) (*dto.PaginationRequest, bool) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return nil, false
	}
	return &page, true
}
