package database

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"precrastine-se/configs"
	"precrastine-se/pkg/logger"
)

// ConnectRedis returns a client for the task cache, or nil when no address
// is configured. The cache is optional; the database stays authoritative.
func ConnectRedis(cfg configs.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.ErrorLogger.Error("Redis connection error", zap.Error(err))
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	return client
}
