package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/service"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
	"github.com/Mahdi-Salimi/university-management-system/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	svc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login 用户登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tokens, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// RefreshToken 刷新令牌
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	tokens, err := h.svc.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, tokens)
}

// Logout 登出，access 与 refresh token 在剩余有效期内一并作废
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.svc.Logout(c.Request.Context(), claims, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "已登出"})
}

// Me 查询当前登录账户
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	caller, ok := MustGetCaller(c)
	if !ok {
		return
	}

	account, err := h.svc.Me(c.Request.Context(), caller.AccountID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, account)
}

// RequestPasswordChange 请求改密验证码
// POST /api/v1/auth/change-password-request
func (h *AuthHandler) RequestPasswordChange(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.svc.RequestPasswordChange(c.Request.Context(), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "验证码已发送"})
}

// VerifyPasswordChange 校验验证码并更新密码
// POST /api/v1/auth/change-password-verify
func (h *AuthHandler) VerifyPasswordChange(c *gin.Context) {
	var req dto.VerifyChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.svc.VerifyPasswordChange(c.Request.Context(), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, gin.H{"message": "密码已更新"})
}

// handleAuthError 认证模块错误码映射
func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, err.Error())
	case errors.Is(err, service.ErrAccountInactive):
		response.Forbidden(c, 11002, err.Error())
	case errors.Is(err, service.ErrAccountNotFound):
		response.NotFound(c, 11003, err.Error())
	case errors.Is(err, service.ErrInvalidOTP):
		response.BadRequest(c, 11004, err.Error())
	case errors.Is(err, service.ErrNotRefreshToken):
		response.Unauthorized(c, 11005, err.Error())
	case errors.Is(err, service.ErrPasswordMismatch):
		response.BadRequest(c, 11007, err.Error())
	case errors.Is(err, jwt.ErrTokenInvalid), errors.Is(err, jwt.ErrTokenExpired):
		response.Unauthorized(c, 10002, "Token 无效或已过期")
	case errors.Is(err, validation.ErrPasswordTooShort),
		errors.Is(err, validation.ErrPasswordAllDigits):
		response.BadRequest(c, 11006, err.Error())
	default:
		response.InternalError(c)
	}
}
