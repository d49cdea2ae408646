package app

import (
	"auth-gateway/internal/config"
	"auth-gateway/internal/logger"
	"auth-gateway/internal/redis"
)

type Infra struct {
	Redis *redis.Client
}

// setupInfra brings up optional shared infrastructure. Redis only
// backs the rate limiter, so the gateway runs without it.
func setupInfra(cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.RedisAddr == "" {
		logger.Info("redis not configured, rate limiting disabled", nil)
		return infra, nil
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)
	infra.Redis = redisClient

	return infra, nil
}
