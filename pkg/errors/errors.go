package errors

import "errors"

// ErrCacheUnavailable Redis 未连接时的降级错误：依赖缓存的功能不可用
var ErrCacheUnavailable = errors.New("缓存服务不可用")
