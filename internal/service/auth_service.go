package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Mahdi-Salimi/university-management-system/config"
	"github.com/Mahdi-Salimi/university-management-system/internal/dto"
	"github.com/Mahdi-Salimi/university-management-system/internal/model"
	"github.com/Mahdi-Salimi/university-management-system/internal/repository"
	"github.com/Mahdi-Salimi/university-management-system/internal/validation"
	"github.com/Mahdi-Salimi/university-management-system/pkg/jwt"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrAccountInactive    = errors.New("账户已停用")
	ErrAccountNotFound    = errors.New("账户不存在")
	ErrInvalidOTP         = errors.New("验证码错误或已过期")
	ErrNotRefreshToken    = errors.New("需要 refresh 类型的 token")
	ErrPasswordMismatch   = errors.New("两次输入的新密码不一致")
)

// TokenStore Token 黑名单存储，由 Redis 客户端实现
type TokenStore interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// OTPStore 改密验证码存储，由 Redis 客户端实现
// Get 未命中时返回空串而非错误
type OTPStore interface {
	SetPasswordResetOTP(ctx context.Context, key, otp string, ttl time.Duration) error
	GetPasswordResetOTP(ctx context.Context, key string) (string, error)
	DeletePasswordResetOTP(ctx context.Context, key string) error
}

// Mailer 邮件发送，由 SMTP 客户端实现
type Mailer interface {
	SendAsync(to, subject, body string)
}

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims, req *dto.LogoutRequest) error
	Me(ctx context.Context, accountID uint) (*dto.AccountResponse, error)
	RequestPasswordChange(ctx context.Context, req *dto.ChangePasswordRequest) error
	VerifyPasswordChange(ctx context.Context, req *dto.VerifyChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	tokens TokenStore
	otps   OTPStore
	mailer Mailer
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	tokens TokenStore,
	otps OTPStore,
	mailer Mailer,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		tokens: tokens,
		otps:   otps,
		mailer: mailer,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	account, err := s.repo.Account.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询账户失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	return s.tokenPair(account.ID, account.Username)
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}

	blacklisted, err := s.tokens.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		s.logger.Error("查询 token 黑名单失败", zap.Error(err))
		return nil, err
	}
	if blacklisted {
		return nil, jwt.ErrTokenInvalid
	}

	account, err := s.repo.Account.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, jwt.ErrTokenInvalid
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, ErrAccountInactive
	}

	// 旧 refresh token 旋转进黑名单
	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
		if err := s.tokens.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Warn("旋转 refresh token 失败", zap.Error(err))
		}
	}

	return s.tokenPair(account.ID, account.Username)
}

// ────────────────────── Logout ──────────────────────

// Logout 将 access token 与对应的 refresh token 一并拉黑
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims, req *dto.LogoutRequest) error {
	refresh, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return err
	}
	if refresh.TokenType != "refresh" {
		return ErrNotRefreshToken
	}
	if refresh.AccountID != claims.AccountID {
		return jwt.ErrTokenInvalid
	}

	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
		if err := s.tokens.BlacklistToken(ctx, claims.ID, ttl); err != nil {
			s.logger.Error("登出拉黑 access token 失败", zap.Error(err))
			return err
		}
	}
	if ttl := time.Until(refresh.ExpiresAt.Time); ttl > 0 {
		if err := s.tokens.BlacklistToken(ctx, refresh.ID, ttl); err != nil {
			s.logger.Error("登出拉黑 refresh token 失败", zap.Error(err))
			return err
		}
	}
	return nil
}

// ────────────────────── Me ──────────────────────

// Me 返回当前登录账户的基本信息
func (s *authService) Me(ctx context.Context, accountID uint) (*dto.AccountResponse, error) {
	account, err := s.repo.Account.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("查询账户失败", zap.Error(err), zap.Uint("account_id", accountID))
		return nil, err
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

// ────────────────────── 改密：请求 OTP ──────────────────────

func (s *authService) RequestPasswordChange(ctx context.Context, req *dto.ChangePasswordRequest) error {
	account, err := s.findAccount(ctx, req.Email, req.Username)
	if err != nil {
		return err
	}

	otp, err := generateOTP(s.cfg.OTP.Length)
	if err != nil {
		s.logger.Error("生成验证码失败", zap.Error(err))
		return err
	}
	if err := s.otps.SetPasswordResetOTP(ctx, otpKey(account.Email, account.ID), otp, s.cfg.OTP.TTL); err != nil {
		s.logger.Error("存储验证码失败", zap.Error(err))
		return err
	}

	body := fmt.Sprintf("您好 %s：\n\n本次修改密码的验证码为 %s，%d 分钟内有效。\n如非本人操作请忽略。",
		account.FullName(), otp, int(s.cfg.OTP.TTL.Minutes()))
	s.mailer.SendAsync(account.Email, "修改密码验证码", body)

	s.logger.Info("已发送改密验证码", zap.Uint("account_id", account.ID))
	return nil
}

// ────────────────────── 改密：校验 OTP ──────────────────────

func (s *authService) VerifyPasswordChange(ctx context.Context, req *dto.VerifyChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	account, err := s.repo.Account.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	key := otpKey(account.Email, account.ID)
	stored, err := s.otps.GetPasswordResetOTP(ctx, key)
	if err != nil {
		s.logger.Error("读取验证码失败", zap.Error(err))
		return err
	}
	if stored == "" || stored != req.OTP {
		return ErrInvalidOTP
	}

	if err := validation.Password(req.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("口令散列失败", zap.Error(err))
		return err
	}
	account.PasswordHash = string(hash)

	if err := s.repo.Account.Update(ctx, account); err != nil {
		s.logger.Error("更新口令失败", zap.Error(err))
		return err
	}

	// 一次性：改密落库后才作废，失败的尝试不烧号
	if err := s.otps.DeletePasswordResetOTP(ctx, key); err != nil {
		s.logger.Warn("删除验证码失败", zap.Error(err))
	}

	s.logger.Info("口令修改成功", zap.Uint("account_id", account.ID))
	return nil
}

// ────────────────────── 内部辅助 ──────────────────────

// findAccount 按邮箱或用户名定位账户，邮箱优先
func (s *authService) findAccount(ctx context.Context, email, username string) (*model.Account, error) {
	var (
		account *model.Account
		err     error
	)
	if email != "" {
		account, err = s.repo.Account.GetByEmail(ctx, email)
	} else {
		account, err = s.repo.Account.GetByUsername(ctx, username)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		s.logger.Error("查询账户失败", zap.Error(err))
		return nil, err
	}
	return account, nil
}

// otpKey 改密验证码的缓存键（redis 侧再加统一前缀）
func otpKey(email string, accountID uint) string {
	return fmt.Sprintf("%s:%d", email, accountID)
}

func (s *authService) tokenPair(accountID uint, username string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(accountID, username)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(accountID, username)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
	}, nil
}

// generateOTP 生成定长十进制验证码
func generateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
