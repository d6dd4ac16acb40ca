package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Mahdi-Salimi/university-management-system/config"
	apperrors "github.com/Mahdi-Salimi/university-management-system/pkg/errors"
)

// Client Redis 客户端封装
// 当前用于 Token 黑名单、密码重置验证码与速率限制
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 黑名单 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken 将 JWT ID 加入黑名单，TTL 与 Token 剩余有效期一致
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return apperrors.ErrCacheUnavailable
	}
	if ttl <= 0 {
		return nil // Token 已过期，无需加入黑名单
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted 检查 JWT ID 是否在黑名单中
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, apperrors.ErrCacheUnavailable
	}
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 密码重置验证码 ──

const otpPrefix = "change_pass:"

// SetPasswordResetOTP 存储验证码，带过期时间
// key 由调用方从账户身份派生（email + 账户 ID）
func (c *Client) SetPasswordResetOTP(ctx context.Context, key, otp string, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return apperrors.ErrCacheUnavailable
	}
	return c.rdb.Set(ctx, otpPrefix+key, otp, ttl).Err()
}

// GetPasswordResetOTP 读取验证码；不存在时返回空字符串
func (c *Client) GetPasswordResetOTP(ctx context.Context, key string) (string, error) {
	if c == nil || c.rdb == nil {
		return "", apperrors.ErrCacheUnavailable
	}
	otp, err := c.rdb.Get(ctx, otpPrefix+key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return otp, nil
}

// DeletePasswordResetOTP 删除验证码（验证成功后调用）
func (c *Client) DeletePasswordResetOTP(ctx context.Context, key string) error {
	if c == nil || c.rdb == nil {
		return apperrors.ErrCacheUnavailable
	}
	return c.rdb.Del(ctx, otpPrefix+key).Err()
}

// ── 速率限制 ──

// CheckRateLimit 固定窗口速率限制：窗口内计数超过 limit 时返回 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
