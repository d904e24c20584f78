package redis

import (
	"Atrium/internal/api/config"
	"context"
	log "log/slog"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端连接；未配置地址时跳过，Token 拉黑退化为客户端过期
func InitRedis(cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		log.Info("Redis not configured, token denylist disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx := context.Background()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// Enabled 是否存在可用的 Redis 连接
func Enabled() bool {
	return Rdb != nil
}
