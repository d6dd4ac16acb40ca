package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest 登出请求：连同 refresh token 一起作废
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 发起改密请求（触发一次性验证码邮件）
// 邮箱与用户名二选一
type ChangePasswordRequest struct {
	Email    string `json:"email"    binding:"required_without=Username,omitempty,email"`
	Username string `json:"username" binding:"required_without=Email"`
}

// VerifyChangePasswordRequest 验证 OTP 并设置新口令
type VerifyChangePasswordRequest struct {
	Email           string `json:"email"            binding:"required,email"`
	OTP             string `json:"otp"              binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
